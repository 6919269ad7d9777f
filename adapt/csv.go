package adapt

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/treema-format/treema/format"
	"github.com/treema-format/treema/ir"
)

// DecodeCSV parses CSV text into a CSV-shaped tree: a Collection of
// "row" Records, one Field per column.  The first record is the
// header.
func DecodeCSV(d []byte) (*ir.Node, error) {
	r := csv.NewReader(bytes.NewReader(d))
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decoding csv: %w", err)
	}
	res := &ir.Node{Kind: ir.CollectionKind}
	if len(records) == 0 {
		return res, nil
	}
	header := records[0]
	for _, rec := range records[1:] {
		row := &ir.Node{Kind: ir.RecordKind, Name: format.RowName}
		for i, cell := range rec {
			if i >= len(header) {
				break
			}
			row.Children = append(row.Children,
				ir.NewField(header[i], ir.Parse(cell)))
		}
		res.Children = append(res.Children, row)
	}
	return res, nil
}

// EncodeCSV renders a CSV-shaped tree as CSV text.  The header is the
// column order of the first row; cells missing from a row are written
// empty.
func EncodeCSV(n *ir.Node) ([]byte, error) {
	var rows []*ir.Node
	for _, c := range n.Children {
		if c.Name == format.RowName {
			rows = append(rows, c)
		}
	}
	buf := bytes.NewBuffer(nil)
	w := csv.NewWriter(buf)
	if len(rows) == 0 {
		w.Flush()
		return buf.Bytes(), w.Error()
	}
	var header []string
	for _, cell := range rows[0].Children {
		header = append(header, cell.Name)
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range rows {
		rec := make([]string, len(header))
		for i, col := range header {
			if cell := ir.Get(row, col); cell != nil {
				rec[i] = cell.Value.Text()
			}
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
