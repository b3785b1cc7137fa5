package typeframe

import (
	"github.com/typeframe/typeframe/frame"
)

// CSVReader reads a CSV file into a table bound to S. The schema's declared
// types drive the parser, so a cell that doesn't parse at its declared width
// is an engine error; validation then runs exactly as in New.
type CSVReader[S Model] struct {
	path      string
	hasHeader bool
	comma     rune
}

// ReadCSV starts a schema-bound CSV read.
func ReadCSV[S Model](path string) *CSVReader[S] {
	return &CSVReader[S]{path: path, hasHeader: true, comma: ','}
}

// HasHeader sets whether the file starts with a header row (default true).
func (r *CSVReader[S]) HasHeader(hasHeader bool) *CSVReader[S] {
	r.hasHeader = hasHeader
	return r
}

// Comma sets the field separator (default ',').
func (r *CSVReader[S]) Comma(comma rune) *CSVReader[S] {
	r.comma = comma
	return r
}

// Finish loads and validates the file.
func (r *CSVReader[S]) Finish() (Table[S], error) {
	df, err := frame.ReadCSV(r.path, frame.CSVOptions{
		HasHeader: r.hasHeader,
		Comma:     r.comma,
		Fields:    schemaOf[S]().Fields(),
	})
	if err != nil {
		return Table[S]{}, err
	}
	return New[S](df)
}

// ParquetReader reads a parquet file into a table bound to S.
type ParquetReader[S Model] struct {
	path string
}

// ReadParquet starts a schema-bound parquet read.
func ReadParquet[S Model](path string) *ParquetReader[S] {
	return &ParquetReader[S]{path: path}
}

// Finish loads and validates the file.
func (r *ParquetReader[S]) Finish() (Table[S], error) {
	df, err := frame.ReadParquet(r.path)
	if err != nil {
		return Table[S]{}, err
	}
	return New[S](df)
}

// JSONReader reads newline-delimited JSON objects into a table bound to S.
type JSONReader[S Model] struct {
	path string
}

// ReadJSON starts a schema-bound JSON-lines read.
func ReadJSON[S Model](path string) *JSONReader[S] {
	return &JSONReader[S]{path: path}
}

// Finish loads and validates the file.
func (r *JSONReader[S]) Finish() (Table[S], error) {
	df, err := frame.ReadJSON(r.path, schemaOf[S]().Fields())
	if err != nil {
		return Table[S]{}, err
	}
	return New[S](df)
}

// WriteCSV writes the table to a CSV file. Pure pass-through: the data was
// validated at construction and can't have drifted since.
func (t Table[S]) WriteCSV(path string) error {
	return t.inner.WriteCSVFile(path, frame.DefaultCSVOptions())
}

// WriteParquet writes the table to a parquet file.
func (t Table[S]) WriteParquet(path string) error {
	return t.inner.WriteParquetFile(path)
}

// WriteJSON writes the table as newline-delimited JSON objects.
func (t Table[S]) WriteJSON(path string) error {
	return t.inner.WriteJSONFile(path)
}
