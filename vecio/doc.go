// Package vecio reads and writes 3D vectors as CSV files.
//
// Files have a header row "x,y,z" and one vector per row. Files ending in
// ".zst" are zstd-compressed and files ending in ".lz4" are LZ4 frames; the
// compression is picked from the extension.
//
//	r, err := vecio.OpenReader("in.csv.zst")
//	vs, err := vecio.ReadVectors(r)
package vecio
