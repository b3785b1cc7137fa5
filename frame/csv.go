package frame

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// CSVOptions configures CSV reading and writing.
type CSVOptions struct {
	// HasHeader controls whether the first row holds column names.
	HasHeader bool
	// Comma is the field separator.
	Comma rune
	// Fields, when set on a read, declares the element type to parse for the
	// named columns. Columns not covered by the hint get their type inferred
	// from the data.
	Fields []Field
}

func DefaultCSVOptions() CSVOptions {
	return CSVOptions{HasHeader: true, Comma: ','}
}

// ReadCSV loads a CSV file into a frame.
func ReadCSV(path string, opts CSVOptions) (*DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't open file")
	}
	defer f.Close()
	return readCSV(bufio.NewReader(f), opts)
}

func readCSV(r io.Reader, opts CSVOptions) (*DataFrame, error) {
	if opts.Comma == 0 {
		opts.Comma = ','
	}
	decoder := csv.NewReader(r)
	decoder.Comma = opts.Comma

	records, err := decoder.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "couldn't decode csv")
	}
	if len(records) == 0 && opts.HasHeader {
		return nil, errors.Errorf("csv has no header row")
	}

	var names []string
	if opts.HasHeader {
		names = records[0]
		records = records[1:]
	} else if len(records) > 0 {
		names = make([]string, len(records[0]))
		for i := range names {
			if i < len(opts.Fields) {
				names[i] = opts.Fields[i].Name
			} else {
				names[i] = fmt.Sprintf("column_%d", i+1)
			}
		}
	}

	hinted := make(map[string]Type, len(opts.Fields))
	for _, field := range opts.Fields {
		hinted[field.Name] = field.Type
	}

	columns := make([]*Series, len(names))
	for i, name := range names {
		values := make([]string, len(records))
		for row := range records {
			if len(records[row]) != len(names) {
				return nil, errors.Errorf("row %d has %d fields, expected %d", row+1, len(records[row]), len(names))
			}
			values[row] = records[row][i]
		}
		typ, ok := hinted[name]
		if !ok {
			typ = inferType(values)
		}
		columns[i], err = parseColumn(name, typ, values)
		if err != nil {
			return nil, err
		}
	}
	return NewDataFrame(columns...)
}

// inferType picks the narrowest type of the sampling ladder (int64, float64,
// bool, string) that fits every sampled value.
func inferType(values []string) Type {
	const sampleSize = 10
	if len(values) == 0 {
		return String
	}
	samples := values
	if len(samples) > sampleSize {
		samples = samples[:sampleSize]
	}
	typ := Invalid
	for _, str := range samples {
		typ = combineInferred(typ, inferValueType(str))
	}
	if typ == Invalid {
		return String
	}
	return typ
}

func inferValueType(str string) Type {
	if _, err := strconv.ParseInt(str, 10, 64); err == nil {
		return Int64
	}
	if _, err := strconv.ParseFloat(str, 64); err == nil {
		return Float64
	}
	if _, err := strconv.ParseBool(str); err == nil {
		return Boolean
	}
	return String
}

func combineInferred(a, b Type) Type {
	switch {
	case a == Invalid || a == b:
		return b
	case (a == Int64 && b == Float64) || (a == Float64 && b == Int64):
		return Float64
	}
	return String
}

func parseColumn(name string, typ Type, values []string) (*Series, error) {
	var data interface{}
	var err error
	switch typ {
	case Int8:
		data, err = parseSlice(values, func(s string) (int8, error) {
			v, err := strconv.ParseInt(s, 10, 8)
			return int8(v), err
		})
	case Int16:
		data, err = parseSlice(values, func(s string) (int16, error) {
			v, err := strconv.ParseInt(s, 10, 16)
			return int16(v), err
		})
	case Int32:
		data, err = parseSlice(values, func(s string) (int32, error) {
			v, err := strconv.ParseInt(s, 10, 32)
			return int32(v), err
		})
	case Int64:
		data, err = parseSlice(values, func(s string) (int64, error) {
			return strconv.ParseInt(s, 10, 64)
		})
	case UInt8:
		data, err = parseSlice(values, func(s string) (uint8, error) {
			v, err := strconv.ParseUint(s, 10, 8)
			return uint8(v), err
		})
	case UInt16:
		data, err = parseSlice(values, func(s string) (uint16, error) {
			v, err := strconv.ParseUint(s, 10, 16)
			return uint16(v), err
		})
	case UInt32:
		data, err = parseSlice(values, func(s string) (uint32, error) {
			v, err := strconv.ParseUint(s, 10, 32)
			return uint32(v), err
		})
	case UInt64:
		data, err = parseSlice(values, func(s string) (uint64, error) {
			return strconv.ParseUint(s, 10, 64)
		})
	case Float32:
		data, err = parseSlice(values, func(s string) (float32, error) {
			v, err := strconv.ParseFloat(s, 32)
			return float32(v), err
		})
	case Float64:
		data, err = parseSlice(values, func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		})
	case Boolean:
		data, err = parseSlice(values, strconv.ParseBool)
	case String:
		data = values
	default:
		return nil, errors.Errorf("cannot parse csv column %q as %s", name, typ)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't parse column %q as %s", name, typ)
	}
	return NewSeries(name, typ, data)
}

func parseSlice[T any](values []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, len(values))
	for i, str := range values {
		v, err := parse(str)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i+1)
		}
		out[i] = v
	}
	return out, nil
}

// WriteCSV writes the frame to w.
func (df *DataFrame) WriteCSV(w io.Writer, opts CSVOptions) error {
	if opts.Comma == 0 {
		opts.Comma = ','
	}
	out := csv.NewWriter(w)
	out.Comma = opts.Comma

	if opts.HasHeader {
		header := make([]string, len(df.columns))
		for i, col := range df.columns {
			header[i] = col.Name()
		}
		if err := out.Write(header); err != nil {
			return errors.Wrap(err, "couldn't write header row")
		}
	}

	row := make([]string, len(df.columns))
	for i := 0; i < df.Height(); i++ {
		for j, col := range df.columns {
			row[j] = col.valueString(i)
		}
		if err := out.Write(row); err != nil {
			return errors.Wrap(err, "couldn't write row")
		}
	}

	out.Flush()
	return out.Error()
}

// WriteCSVFile writes the frame to a file at path.
func (df *DataFrame) WriteCSVFile(path string, opts CSVOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "couldn't create file")
	}
	if err := df.WriteCSV(f, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
