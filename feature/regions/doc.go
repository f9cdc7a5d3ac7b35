// Package regions implements the region dataset pipeline.
//
// A dataset is a resources directory holding an items file, a titles file and
// the images the items point at:
//
//	[{"image": "map.png", "regions": {"lisbon": "#FF0000", "faro": "#00FF00"}}]
//	{"lisbon": "Lisbon", "porto": "Porto"}
//
// # Components
//
//   - TitleTable: key→title lookup with an explicit found/not-found result.
//     Keys are compared in Unicode NFC form, so a region key and a title key
//     that differ only in normalization (composed vs decomposed accents) match,
//     where an exact byte comparison would drop the region.
//   - RawItem: one items-file record; region order follows the source object.
//   - Generator.Normalize: resolves an item into a NormalizedItem (image path,
//     image_file_missing flag, regions that have a title).
//   - Generator.Generate: loads both files and yields normalized records lazily.
//
// Normalized records feed an external flashcard packager; nothing here writes
// decks or media.
package regions
