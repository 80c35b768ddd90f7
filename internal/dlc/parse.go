package dlc

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"paradoxpatch/internal/diagnostic"
	"paradoxpatch/internal/textutil"
)

// Entry is one unlockable content pack.
type Entry struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
	// Path is the definition file the entry was parsed from.
	Path string `json:"path"`
}

const (
	keyName    = "name"
	keySteamID = "steam_id"
)

// field is a recognized value together with its byte offset in the source.
type field struct {
	value  string
	offset int
	seen   bool
}

// ParseFile reads and parses one .dlc definition file.
func ParseFile(path string) (Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, &Error{Kind: KindReadDlcFileFailed, Path: path, Err: err}
	}
	return Parse(path, string(data))
}

// Parse extracts the steam_id and name from source. Lines without '=' and
// unrecognized keys are ignored; when a key repeats, the last value wins.
func Parse(path, source string) (Entry, error) {
	source = textutil.StripBOM(source)

	var name, steamID field
	offset := 0
	for offset <= len(source) {
		end := strings.IndexByte(source[offset:], '\n')
		var line string
		if end < 0 {
			line = source[offset:]
		} else {
			line = source[offset : offset+end]
		}
		if key, value, valueOffset, ok := splitPair(line); ok {
			switch key {
			case keyName:
				name = field{value: value, offset: offset + valueOffset, seen: true}
			case keySteamID:
				steamID = field{value: value, offset: offset + valueOffset, seen: true}
			}
		}
		if end < 0 {
			break
		}
		offset += end + 1
	}

	if !steamID.seen {
		return Entry{}, parseError(path, source, "missing steam_id", nil, "")
	}
	id, err := strconv.ParseUint(steamID.value, 10, 32)
	if err != nil || id == 0 {
		span := &diagnostic.Span{Offset: steamID.offset, Length: len(steamID.value)}
		return Entry{}, parseError(path, source,
			fmt.Sprintf("invalid steam_id %q", steamID.value), span, "expected a positive integer")
	}
	if !name.seen || name.value == "" {
		return Entry{}, parseError(path, source, "missing name", nil, "")
	}

	return Entry{ID: uint32(id), Name: name.value, Path: path}, nil
}

// splitPair splits a `key = value` line on its first '='. The returned offset
// locates value within line, after trimming and quote stripping.
func splitPair(line string) (key, value string, offset int, ok bool) {
	line = strings.TrimSuffix(line, "\r")
	eq := strings.IndexByte(line, '=')
	if eq < 0 {
		return "", "", 0, false
	}
	key = strings.TrimSpace(line[:eq])

	raw := line[eq+1:]
	trimmedLeft := strings.TrimLeft(raw, " \t")
	offset = eq + 1 + len(raw) - len(trimmedLeft)
	value = strings.TrimRight(trimmedLeft, " \t")
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
		offset++
	}
	return key, value, offset, true
}

func parseError(path, source, message string, span *diagnostic.Span, label string) error {
	e := &Error{Kind: KindParseDlcFailed, Path: path}
	e.Diagnostic = &diagnostic.Diagnostic{
		Code:    e.Code(),
		Message: message,
		Path:    path,
		Source:  source,
		Span:    span,
		Label:   label,
		Help:    e.Help(),
	}
	return e
}
