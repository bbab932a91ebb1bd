package ioentrez

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const maxLine = 16 * 1024 * 1024

var gzipMagic = []byte{0x1f, 0x8b}

// tsvFile reads a tab-separated file with a header row. The header may
// start with '#'. Gzip-compressed files are detected by content.
type tsvFile struct {
	path  string
	f     *os.File
	gz    *gzip.Reader
	sc    *bufio.Scanner
	line  int
	cols  map[string]int
	width int
}

func openTSV(path string, required []string) (*tsvFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, RawFileError(path, err)
	}

	res := &tsvFile{path: path, f: f}
	br := bufio.NewReader(f)
	var r io.Reader = br
	if magic, _ := br.Peek(2); len(magic) == 2 &&
		magic[0] == gzipMagic[0] && magic[1] == gzipMagic[1] {
		res.gz, err = gzip.NewReader(br)
		if err != nil {
			f.Close()
			return nil, RawFileError(path, err)
		}
		r = res.gz
	}

	res.sc = bufio.NewScanner(r)
	res.sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	if err = res.readHeader(required); err != nil {
		res.Close()
		return nil, err
	}
	return res, nil
}

func (t *tsvFile) readHeader(required []string) error {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return RawFileError(t.path, err)
		}
		return ParseError(t.path, 1, errors.New("file has no header"))
	}
	t.line = 1

	header := strings.TrimPrefix(t.sc.Text(), "#")
	fields := strings.Split(header, "\t")
	t.width = len(fields)
	t.cols = make(map[string]int, len(fields))
	for i, v := range fields {
		t.cols[strings.TrimSpace(v)] = i
	}

	var missing []string
	for _, v := range required {
		if _, ok := t.cols[v]; !ok {
			missing = append(missing, v)
		}
	}
	if len(missing) > 0 {
		return SchemaError(t.path, missing)
	}
	return nil
}

// next returns fields of the next non-empty row. It returns nil fields
// and nil error at the end of the file.
func (t *tsvFile) next() ([]string, error) {
	for t.sc.Scan() {
		t.line++
		line := t.sc.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != t.width {
			return nil, ParseError(t.path, t.line,
				fmt.Errorf("expected %d fields, got %d", t.width, len(fields)))
		}
		return fields, nil
	}
	if err := t.sc.Err(); err != nil {
		return nil, RawFileError(t.path, err)
	}
	return nil, nil
}

func (t *tsvFile) str(fields []string, col string) string {
	return fields[t.cols[col]]
}

// optStr treats '-' as an empty value.
func (t *tsvFile) optStr(fields []string, col string) string {
	res := t.str(fields, col)
	if res == "-" {
		return ""
	}
	return res
}

func (t *tsvFile) num(fields []string, col string) (int, error) {
	s := t.str(fields, col)
	res, err := strconv.Atoi(s)
	if err != nil {
		return 0, ParseError(t.path, t.line,
			fmt.Errorf("column %s: '%s' is not an integer", col, s))
	}
	return res, nil
}

// optNum treats '-' as zero.
func (t *tsvFile) optNum(fields []string, col string) (int, error) {
	if t.str(fields, col) == "-" {
		return 0, nil
	}
	return t.num(fields, col)
}

// list splits a '|' separated value. '-' is an empty list.
func (t *tsvFile) list(fields []string, col string) []string {
	s := t.optStr(fields, col)
	if s == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(s, "|") {
		if v = strings.TrimSpace(v); v != "" {
			res = append(res, v)
		}
	}
	return res
}

func (t *tsvFile) Close() error {
	if t.gz != nil {
		t.gz.Close()
	}
	return t.f.Close()
}
