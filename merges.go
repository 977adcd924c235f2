package xlsplit

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// ExtractMergeRanges recovers the merged-cell regions of the named
// sheet by reading the workbook's internal XML parts directly. Only
// the zip-packaged format carries recoverable merge metadata; for the
// legacy binary format the result is an empty list and a nil error.
//
// The sheet part is located through the container's indirection:
// xl/workbook.xml maps the display name to a relationship id, and
// xl/_rels/workbook.xml.rels maps that id to the part path. Individual
// merge references that fail to decode are dropped silently; the
// structural lookups fail loudly.
func ExtractMergeRanges(path, sheetName string) ([]MergeRange, error) {
	if sniffFormat(path) != formatXLSX {
		return nil, nil
	}

	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %q as zip: %v", ErrMalformedContainer, path, err)
	}
	defer archive.Close()

	workbookXML, err := readZipEntry(&archive.Reader, "xl/workbook.xml")
	if err != nil {
		return nil, err
	}
	relID, err := findSheetRelID(workbookXML, sheetName)
	if err != nil {
		return nil, err
	}

	relsXML, err := readZipEntry(&archive.Reader, "xl/_rels/workbook.xml.rels")
	if err != nil {
		return nil, err
	}
	target, err := findRelationshipTarget(relsXML, relID)
	if err != nil {
		return nil, err
	}

	sheetXML, err := readZipEntry(&archive.Reader, "xl/"+strings.TrimPrefix(target, "/"))
	if err != nil {
		return nil, err
	}
	return parseMergeCells(sheetXML)
}

func readZipEntry(archive *zip.Reader, name string) (string, error) {
	for _, entry := range archive.File {
		if entry.Name != name {
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			return "", fmt.Errorf("%w: open entry %q: %v", ErrMalformedContainer, name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return "", fmt.Errorf("%w: read entry %q: %v", ErrMalformedContainer, name, err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("%w: %q", ErrContainerEntryMissing, name)
}

// findSheetRelID scans workbook.xml for the sheet declaration whose
// display name matches and returns its r:id attribute.
func findSheetRelID(workbookXML, sheetName string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(workbookXML))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: workbook.xml: %v", ErrMalformedContainer, err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "sheet" {
			continue
		}
		var name, relID string
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "name":
				name = attr.Value
			case "id":
				relID = attr.Value
			}
		}
		if name == sheetName && relID != "" {
			return relID, nil
		}
	}
	return "", fmt.Errorf("%w: sheet %q has no declaration in workbook.xml", ErrRelationshipNotFound, sheetName)
}

// findRelationshipTarget scans workbook.xml.rels for the relationship
// with the given id and returns its target part path.
func findRelationshipTarget(relsXML, relID string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(relsXML))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: workbook.xml.rels: %v", ErrMalformedContainer, err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Relationship" {
			continue
		}
		var id, target string
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "Id":
				id = attr.Value
			case "Target":
				target = attr.Value
			}
		}
		if id == relID && target != "" {
			return target, nil
		}
	}
	return "", fmt.Errorf("%w: relationship %q has no target", ErrRelationshipNotFound, relID)
}

// parseMergeCells scans a sheet part for mergeCell declarations.
// References that do not decode are skipped; merge recovery is
// best-effort and must not abort the split.
func parseMergeCells(sheetXML string) ([]MergeRange, error) {
	dec := xml.NewDecoder(strings.NewReader(sheetXML))
	var ranges []MergeRange
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: sheet part: %v", ErrMalformedContainer, err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "mergeCell" {
			continue
		}
		for _, attr := range se.Attr {
			if attr.Name.Local != "ref" {
				continue
			}
			if r, ok := parseRangeRef(attr.Value); ok {
				ranges = append(ranges, r)
			}
		}
	}
	return ranges, nil
}
