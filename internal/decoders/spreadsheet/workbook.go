package spreadsheet

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// workbook wraps an open XLSX container. An XLSX file is a ZIP archive
// holding XML parts: xl/workbook.xml lists the sheets in order,
// xl/_rels/workbook.xml.rels maps sheet relationship ids to worksheet
// parts, and xl/sharedStrings.xml interns string cell values.
type workbook struct {
	reader *zip.ReadCloser
	files  map[string]*zip.File
}

// sheet holds one worksheet's cells as a dense row/column grid.
type sheet struct {
	Name string
	Rows [][]string
}

func openWorkbook(path string) (*workbook, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	files := make(map[string]*zip.File, len(r.File))
	for _, f := range r.File {
		files[f.Name] = f
	}
	return &workbook{reader: r, files: files}, nil
}

func (wb *workbook) Close() error {
	return wb.reader.Close()
}

// Sheets returns every worksheet in workbook order.
func (wb *workbook) Sheets() ([]sheet, error) {
	var book workbookXML
	if err := wb.unmarshalPart("xl/workbook.xml", &book); err != nil {
		return nil, err
	}

	var rels relationshipsXML
	if err := wb.unmarshalPart("xl/_rels/workbook.xml.rels", &rels); err != nil {
		return nil, err
	}
	targetByID := make(map[string]string, len(rels.Rels))
	for _, rel := range rels.Rels {
		targetByID[rel.ID] = rel.Target
	}

	shared, err := wb.sharedStrings()
	if err != nil {
		return nil, err
	}

	sheets := make([]sheet, 0, len(book.Sheets))
	for _, ref := range book.Sheets {
		target, ok := targetByID[ref.RID]
		if !ok {
			return nil, fmt.Errorf("sheet %q: no relationship %q", ref.Name, ref.RID)
		}
		rows, err := wb.sheetRows(partPath(target), shared)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", ref.Name, err)
		}
		sheets = append(sheets, sheet{Name: ref.Name, Rows: rows})
	}
	return sheets, nil
}

// partPath resolves a relationship target against the xl/ directory.
func partPath(target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return "xl/" + target
}

func (wb *workbook) unmarshalPart(name string, v any) error {
	f, ok := wb.files[name]
	if !ok {
		return fmt.Errorf("%s not found in archive", name)
	}
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := xml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// sharedStrings loads the interned string table. The part is optional:
// workbooks without string cells omit it.
func (wb *workbook) sharedStrings() ([]string, error) {
	if _, ok := wb.files["xl/sharedStrings.xml"]; !ok {
		return nil, nil
	}
	var sst sstXML
	if err := wb.unmarshalPart("xl/sharedStrings.xml", &sst); err != nil {
		return nil, err
	}
	out := make([]string, len(sst.Items))
	for i, si := range sst.Items {
		out[i] = si.value()
	}
	return out, nil
}

// sheetRows parses one worksheet part into a dense grid. Cells carry
// their own column reference; gaps are filled with empty strings.
func (wb *workbook) sheetRows(part string, shared []string) ([][]string, error) {
	var ws worksheetXML
	if err := wb.unmarshalPart(part, &ws); err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(ws.Rows))
	for _, row := range ws.Rows {
		var cells []string
		next := 0
		for _, c := range row.Cells {
			col := next
			if idx, ok := columnIndex(c.Ref); ok {
				col = idx
			}
			for len(cells) < col {
				cells = append(cells, "")
			}
			value, err := c.value(shared)
			if err != nil {
				return nil, err
			}
			cells = append(cells, value)
			next = col + 1
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// columnIndex converts the letter prefix of a cell reference such as
// "BC12" to a zero-based column index.
func columnIndex(ref string) (int, bool) {
	n := 0
	seen := false
	for _, r := range ref {
		if r < 'A' || r > 'Z' {
			break
		}
		n = n*26 + int(r-'A') + 1
		seen = true
	}
	if !seen {
		return 0, false
	}
	return n - 1, true
}

// --- XML part shapes ---

type workbookXML struct {
	Sheets []sheetRefXML `xml:"sheets>sheet"`
}

type sheetRefXML struct {
	Name string `xml:"name,attr"`
	RID  string `xml:"id,attr"`
}

type relationshipsXML struct {
	Rels []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Target string `xml:"Target,attr"`
}

type sstXML struct {
	Items []sharedStringXML `xml:"si"`
}

type sharedStringXML struct {
	T    *string `xml:"t"`
	Runs []struct {
		T string `xml:"t"`
	} `xml:"r"`
}

// value flattens a shared string: either a plain <t> or rich-text runs.
func (si sharedStringXML) value() string {
	if si.T != nil {
		return *si.T
	}
	var sb strings.Builder
	for _, run := range si.Runs {
		sb.WriteString(run.T)
	}
	return sb.String()
}

type worksheetXML struct {
	Rows []rowXML `xml:"sheetData>row"`
}

type rowXML struct {
	Cells []cellXML `xml:"c"`
}

type cellXML struct {
	Ref  string `xml:"r,attr"`
	Type string `xml:"t,attr"`
	V    string `xml:"v"`
	IS   struct {
		T string `xml:"t"`
	} `xml:"is"`
}

// value resolves the cell's display text. Shared-string cells index
// into the interned table; inline strings carry their own text.
func (c cellXML) value(shared []string) (string, error) {
	switch c.Type {
	case "s":
		idx, err := strconv.Atoi(strings.TrimSpace(c.V))
		if err != nil {
			return "", fmt.Errorf("cell %s: bad shared string index %q", c.Ref, c.V)
		}
		if idx < 0 || idx >= len(shared) {
			return "", fmt.Errorf("cell %s: shared string index %d out of range", c.Ref, idx)
		}
		return shared[idx], nil
	case "inlineStr":
		return c.IS.T, nil
	default:
		return c.V, nil
	}
}
