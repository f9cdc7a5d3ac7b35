package regions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"region-cards/core/utils"

	"golang.org/x/text/unicode/norm"
)

// TitleTable maps region keys to human-readable titles for one locale.
// Keys are matched in Unicode NFC form so that composed and decomposed
// spellings of the same key resolve to the same title.
type TitleTable struct {
	titles map[string]string
}

// NewTitleTable indexes a raw key/title mapping.
func NewTitleTable(raw map[string]string) TitleTable {
	titles := make(map[string]string, len(raw))
	for key, title := range raw {
		nk := norm.NFC.String(key)
		if _, taken := titles[nk]; taken && nk != key {
			continue
		}
		titles[nk] = title
	}
	return TitleTable{titles: titles}
}

// Lookup returns the title for key and whether one was found.
func (t TitleTable) Lookup(key string) (string, bool) {
	title, ok := t.titles[norm.NFC.String(key)]
	return title, ok
}

// Len returns the number of titles.
func (t TitleTable) Len() int {
	return len(t.titles)
}

// UnmarshalJSON decodes a titles file: an object of string key to string title.
func (t *TitleTable) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = NewTitleTable(raw)
	return nil
}

// RegionColor is one entry of an item's region mapping.
type RegionColor struct {
	Key   string
	Color string
}

// RegionColors is the region→color mapping of a raw item in source order.
type RegionColors []RegionColor

// UnmarshalJSON decodes a JSON object while keeping the order of its keys.
// A repeated key keeps its first position and its last value.
func (r *RegionColors) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*r = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("regions: expected object, got %v", tok)
	}

	var out RegionColors
	seen := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("regions: unexpected key %v", keyTok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return err
		}
		color := utils.ToString(value)

		if i, dup := seen[key]; dup {
			out[i].Color = color
			continue
		}
		seen[key] = len(out)
		out = append(out, RegionColor{Key: key, Color: color})
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}

	*r = out
	return nil
}

// RawItem is one record of an items file.
type RawItem struct {
	Image   string       `json:"image"`
	Regions RegionColors `json:"regions"`
}

// Region is a region that resolved to a known title.
type Region struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Color string `json:"color"`
}

// NormalizedItem is the packaging-ready form of a RawItem.
type NormalizedItem struct {
	SourceImage      string   `json:"source_image"`
	Regions          []Region `json:"regions"`
	ImageFileMissing bool     `json:"image_file_missing"`
}

// ImageName returns the last element of SourceImage, or "" when the item
// named no image (SourceImage ends with the separator).
func (n NormalizedItem) ImageName() string {
	return n.SourceImage[strings.LastIndex(n.SourceImage, "/")+1:]
}
