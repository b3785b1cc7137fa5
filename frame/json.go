package frame

import (
	"bufio"
	"encoding/json"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"github.com/valyala/fastjson"
)

// ReadJSON loads a file of newline-delimited JSON objects into a frame.
// fields declares the element type to extract for the named keys; when nil,
// names and types are inferred from the first object (numbers become int64
// when integral, float64 otherwise).
func ReadJSON(path string, fields []Field) (*DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't open file")
	}
	defer f.Close()
	return readJSON(f, fields)
}

func readJSON(r io.Reader, fields []Field) (*DataFrame, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, 1024*1024)

	data := make([]interface{}, len(fields))
	for i, field := range fields {
		data[i] = allocSlice(field.Type, 0)
	}

	var p fastjson.Parser
	line := 0
	for sc.Scan() {
		line++
		v, err := p.ParseBytes(sc.Bytes())
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't parse json on line %d", line)
		}
		if v.Type() != fastjson.TypeObject {
			return nil, errors.Errorf("expected JSON object on line %d, got '%s'", line, sc.Text())
		}
		o, err := v.Object()
		if err != nil {
			return nil, errors.Errorf("expected JSON object on line %d, got '%s'", line, sc.Text())
		}

		if fields == nil {
			fields, err = inferJSONFields(o)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			data = make([]interface{}, len(fields))
			for i, field := range fields {
				data[i] = allocSlice(field.Type, 0)
			}
		}

		for i, field := range fields {
			value := o.Get(field.Name)
			if value == nil {
				return nil, errors.Errorf("missing field %q on line %d", field.Name, line)
			}
			data[i], err = appendJSONValue(data[i], field.Type, value)
			if err != nil {
				return nil, errors.Wrapf(err, "field %q on line %d", field.Name, line)
			}
		}
	}
	if sc.Err() != nil {
		return nil, errors.Wrap(sc.Err(), "couldn't scan lines")
	}

	columns := make([]*Series, len(fields))
	for i, field := range fields {
		s, err := NewSeries(field.Name, field.Type, data[i])
		if err != nil {
			return nil, err
		}
		columns[i] = s
	}
	return NewDataFrame(columns...)
}

func inferJSONFields(o *fastjson.Object) ([]Field, error) {
	var fields []Field
	var visitErr error
	o.Visit(func(key []byte, v *fastjson.Value) {
		typ, err := inferJSONType(v)
		if err != nil && visitErr == nil {
			visitErr = errors.Wrapf(err, "field %q", string(key))
			return
		}
		fields = append(fields, Field{Name: string(key), Type: typ})
	})
	return fields, visitErr
}

func inferJSONType(v *fastjson.Value) (Type, error) {
	switch v.Type() {
	case fastjson.TypeNumber:
		if _, err := v.Int64(); err == nil {
			return Int64, nil
		}
		return Float64, nil
	case fastjson.TypeTrue, fastjson.TypeFalse:
		return Boolean, nil
	case fastjson.TypeString:
		return String, nil
	}
	return Invalid, errors.Errorf("unsupported JSON value type %s", v.Type())
}

func appendJSONValue(data interface{}, typ Type, value *fastjson.Value) (interface{}, error) {
	switch typ {
	case Int8, Int16, Int32, Int64:
		v, err := value.Int64()
		if err != nil {
			return nil, err
		}
		switch typ {
		case Int8:
			if v < math.MinInt8 || v > math.MaxInt8 {
				return nil, errors.Errorf("value %d out of range for %s", v, typ)
			}
			return append(data.([]int8), int8(v)), nil
		case Int16:
			if v < math.MinInt16 || v > math.MaxInt16 {
				return nil, errors.Errorf("value %d out of range for %s", v, typ)
			}
			return append(data.([]int16), int16(v)), nil
		case Int32:
			if v < math.MinInt32 || v > math.MaxInt32 {
				return nil, errors.Errorf("value %d out of range for %s", v, typ)
			}
			return append(data.([]int32), int32(v)), nil
		default:
			return append(data.([]int64), v), nil
		}
	case UInt8, UInt16, UInt32, UInt64:
		v, err := value.Uint64()
		if err != nil {
			return nil, err
		}
		switch typ {
		case UInt8:
			if v > math.MaxUint8 {
				return nil, errors.Errorf("value %d out of range for %s", v, typ)
			}
			return append(data.([]uint8), uint8(v)), nil
		case UInt16:
			if v > math.MaxUint16 {
				return nil, errors.Errorf("value %d out of range for %s", v, typ)
			}
			return append(data.([]uint16), uint16(v)), nil
		case UInt32:
			if v > math.MaxUint32 {
				return nil, errors.Errorf("value %d out of range for %s", v, typ)
			}
			return append(data.([]uint32), uint32(v)), nil
		default:
			return append(data.([]uint64), v), nil
		}
	case Float32, Float64:
		v, err := value.Float64()
		if err != nil {
			return nil, err
		}
		if typ == Float32 {
			return append(data.([]float32), float32(v)), nil
		}
		return append(data.([]float64), v), nil
	case Boolean:
		v, err := value.Bool()
		if err != nil {
			return nil, err
		}
		return append(data.([]bool), v), nil
	case String:
		v, err := value.StringBytes()
		if err != nil {
			return nil, err
		}
		return append(data.([]string), string(v)), nil
	}
	return nil, errors.Errorf("unsupported element type %s", typ)
}

// WriteJSON writes the frame to w as newline-delimited JSON objects.
func (df *DataFrame) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	for i := 0; i < df.Height(); i++ {
		object := make(map[string]interface{}, len(df.columns))
		for _, col := range df.columns {
			object[col.Name()] = col.Value(i)
		}
		if err := encoder.Encode(object); err != nil {
			return errors.Wrapf(err, "couldn't encode row %d", i)
		}
	}
	return nil
}

// WriteJSONFile writes the frame to a file at path.
func (df *DataFrame) WriteJSONFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "couldn't create file")
	}
	if err := df.WriteJSON(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
