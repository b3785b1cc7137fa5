package frame

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/segmentio/parquet-go"
	"github.com/segmentio/parquet-go/format"
)

// ReadParquet loads a parquet file into a frame. Only flat schemas of the
// supported element types are accepted; nested groups are an error.
func ReadParquet(path string) (*DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't open file")
	}
	defer f.Close()
	stat, err := f.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "couldn't stat file")
	}

	pf, err := parquet.OpenFile(f, stat.Size(), &parquet.FileConfig{
		SkipPageIndex:    true,
		SkipBloomFilters: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "couldn't open parquet file")
	}

	schemaFields := pf.Schema().Fields()
	fields := make([]Field, len(schemaFields))
	for i, field := range schemaFields {
		typ, err := frameTypeOfNode(field)
		if err != nil {
			return nil, errors.Wrapf(err, "column %q", field.Name())
		}
		fields[i] = Field{Name: field.Name(), Type: typ}
	}

	pr := parquet.NewReader(pf)
	height := int(pr.NumRows())
	data := make([]interface{}, len(fields))
	for i, field := range fields {
		data[i] = allocSlice(field.Type, height)
	}

	var row parquet.Row
	for i := 0; i < height; i++ {
		row, err = pr.ReadRow(row[:0])
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrap(err, "couldn't read row")
		}
		for _, value := range row {
			col := int(value.Column())
			if col < 0 || col >= len(fields) {
				return nil, errors.Errorf("row %d has value for unknown column %d", i, col)
			}
			setParquetValue(data[col], fields[col].Type, i, value)
		}
	}

	columns := make([]*Series, len(fields))
	for i, field := range fields {
		columns[i], err = NewSeries(field.Name, field.Type, data[i])
		if err != nil {
			return nil, err
		}
	}
	return NewDataFrame(columns...)
}

func frameTypeOfNode(node parquet.Node) (Type, error) {
	if !node.Leaf() {
		return Invalid, errors.Errorf("nested parquet columns aren't supported")
	}
	t := node.Type()
	logical := t.LogicalType()
	switch t.Kind() {
	case parquet.Boolean:
		return Boolean, nil
	case parquet.Int32:
		if logical != nil && logical.Integer != nil {
			return intTypeOf(logical.Integer, Int32)
		}
		return Int32, nil
	case parquet.Int64:
		if logical != nil && logical.Integer != nil {
			return intTypeOf(logical.Integer, Int64)
		}
		return Int64, nil
	case parquet.Float:
		return Float32, nil
	case parquet.Double:
		return Float64, nil
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return String, nil
	}
	return Invalid, errors.Errorf("unsupported parquet type %s", t)
}

func intTypeOf(logical *format.IntType, fallback Type) (Type, error) {
	signed := map[int8]Type{8: Int8, 16: Int16, 32: Int32, 64: Int64}
	unsigned := map[int8]Type{8: UInt8, 16: UInt16, 32: UInt32, 64: UInt64}
	table := signed
	if !logical.IsSigned {
		table = unsigned
	}
	if typ, ok := table[logical.BitWidth]; ok {
		return typ, nil
	}
	return fallback, nil
}

func allocSlice(typ Type, n int) interface{} {
	switch typ {
	case Int8:
		return make([]int8, n)
	case Int16:
		return make([]int16, n)
	case Int32:
		return make([]int32, n)
	case Int64:
		return make([]int64, n)
	case UInt8:
		return make([]uint8, n)
	case UInt16:
		return make([]uint16, n)
	case UInt32:
		return make([]uint32, n)
	case UInt64:
		return make([]uint64, n)
	case Float32:
		return make([]float32, n)
	case Float64:
		return make([]float64, n)
	case Boolean:
		return make([]bool, n)
	case String:
		return make([]string, n)
	}
	panic("invalid series type")
}

func setParquetValue(data interface{}, typ Type, i int, value parquet.Value) {
	switch typ {
	case Int8:
		data.([]int8)[i] = int8(value.Int32())
	case Int16:
		data.([]int16)[i] = int16(value.Int32())
	case Int32:
		data.([]int32)[i] = value.Int32()
	case Int64:
		data.([]int64)[i] = value.Int64()
	case UInt8:
		data.([]uint8)[i] = uint8(value.Int32())
	case UInt16:
		data.([]uint16)[i] = uint16(value.Int32())
	case UInt32:
		data.([]uint32)[i] = uint32(value.Int32())
	case UInt64:
		data.([]uint64)[i] = uint64(value.Int64())
	case Float32:
		data.([]float32)[i] = value.Float()
	case Float64:
		data.([]float64)[i] = value.Double()
	case Boolean:
		data.([]bool)[i] = value.Boolean()
	case String:
		data.([]string)[i] = string(value.ByteArray())
	}
}

// WriteParquet writes the frame to w as a flat parquet file.
func (df *DataFrame) WriteParquet(w io.Writer) error {
	group := parquet.Group{}
	for _, field := range df.Fields() {
		group[field.Name] = parquetNodeOf(field.Type)
	}
	schema := parquet.NewSchema("frame", group)
	pw := parquet.NewWriter(w, schema)

	// parquet groups order their fields alphabetically, so rows are built in
	// the schema's order, not the frame's.
	schemaFields := schema.Fields()
	row := make(parquet.Row, len(schemaFields))
	for i := 0; i < df.Height(); i++ {
		for j, field := range schemaFields {
			col, err := df.Column(field.Name())
			if err != nil {
				return err
			}
			row[j] = parquetValueOf(col, i).Level(0, 0, j)
		}
		if err := pw.WriteRow(row); err != nil {
			return errors.Wrapf(err, "couldn't write row %d", i)
		}
	}
	return pw.Close()
}

// WriteParquetFile writes the frame to a parquet file at path.
func (df *DataFrame) WriteParquetFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "couldn't create file")
	}
	if err := df.WriteParquet(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func parquetNodeOf(typ Type) parquet.Node {
	switch typ {
	case Int8:
		return parquet.Int(8)
	case Int16:
		return parquet.Int(16)
	case Int32:
		return parquet.Int(32)
	case Int64:
		return parquet.Int(64)
	case UInt8:
		return parquet.Uint(8)
	case UInt16:
		return parquet.Uint(16)
	case UInt32:
		return parquet.Uint(32)
	case UInt64:
		return parquet.Uint(64)
	case Float32:
		return parquet.Leaf(parquet.FloatType)
	case Float64:
		return parquet.Leaf(parquet.DoubleType)
	case Boolean:
		return parquet.Leaf(parquet.BooleanType)
	case String:
		return parquet.String()
	}
	panic("invalid series type")
}

func parquetValueOf(s *Series, i int) parquet.Value {
	switch s.typ {
	case Int8:
		return parquet.ValueOf(int32(s.data.([]int8)[i]))
	case Int16:
		return parquet.ValueOf(int32(s.data.([]int16)[i]))
	case Int32:
		return parquet.ValueOf(s.data.([]int32)[i])
	case Int64:
		return parquet.ValueOf(s.data.([]int64)[i])
	case UInt8:
		return parquet.ValueOf(int32(s.data.([]uint8)[i]))
	case UInt16:
		return parquet.ValueOf(int32(s.data.([]uint16)[i]))
	case UInt32:
		return parquet.ValueOf(int32(s.data.([]uint32)[i]))
	case UInt64:
		return parquet.ValueOf(int64(s.data.([]uint64)[i]))
	case Float32:
		return parquet.ValueOf(s.data.([]float32)[i])
	case Float64:
		return parquet.ValueOf(s.data.([]float64)[i])
	case Boolean:
		return parquet.ValueOf(s.data.([]bool)[i])
	case String:
		return parquet.ValueOf([]byte(s.data.([]string)[i]))
	}
	panic("invalid series type")
}
