package various

import (
	"encoding/binary"
	"io"
)

var byteorder = binary.LittleEndian

// WriteFloatSlice writes a length-prefixed float64 slice.
func WriteFloatSlice(w io.Writer, s []float64) error {
	if err := binary.Write(w, byteorder, int64(len(s))); err != nil {
		return err
	}
	return binary.Write(w, byteorder, s)
}

// ReadFloatSlice reads a length-prefixed float64 slice.
func ReadFloatSlice(r io.Reader) ([]float64, error) {
	var num int64
	if err := binary.Read(r, byteorder, &num); err != nil {
		return nil, err
	}
	s := make([]float64, num)
	if err := binary.Read(r, byteorder, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Write2FloatSlice writes a length-prefixed slice of float64 pairs.
func Write2FloatSlice(w io.Writer, s [][2]float64) error {
	if err := binary.Write(w, byteorder, int64(len(s))); err != nil {
		return err
	}
	for _, v := range s {
		if err := binary.Write(w, byteorder, v); err != nil {
			return err
		}
	}
	return nil
}

// Read2FloatSlice reads a length-prefixed slice of float64 pairs.
func Read2FloatSlice(r io.Reader) ([][2]float64, error) {
	var num int64
	if err := binary.Read(r, byteorder, &num); err != nil {
		return nil, err
	}
	s := make([][2]float64, num)
	for i := range s {
		if err := binary.Read(r, byteorder, &s[i]); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// WriteIntSlice writes a length-prefixed int slice as int64 values.
func WriteIntSlice(w io.Writer, s []int) error {
	if err := binary.Write(w, byteorder, int64(len(s))); err != nil {
		return err
	}
	for _, v := range s {
		if err := binary.Write(w, byteorder, int64(v)); err != nil {
			return err
		}
	}
	return nil
}

// ReadIntSlice reads a length-prefixed int slice stored as int64 values.
func ReadIntSlice(r io.Reader) ([]int, error) {
	var num int64
	if err := binary.Read(r, byteorder, &num); err != nil {
		return nil, err
	}
	s := make([]int, num)
	for i := range s {
		var v int64
		if err := binary.Read(r, byteorder, &v); err != nil {
			return nil, err
		}
		s[i] = int(v)
	}
	return s, nil
}
