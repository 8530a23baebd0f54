package wirecodec

import (
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	e := NewEncoder()
	e.Varint(1, 42)
	e.String(2, "Noite Estrelada")
	e.Bool(3, true)
	e.Submessage(4, []byte{0x08, 0x01})

	d := NewDecoder(e.Bytes())

	var gotVarint int64
	var gotString string
	var gotBool bool
	var gotSub []byte

	for !d.Done() {
		field, wt, err := d.ReadTag()
		if err != nil {
			t.Fatalf("ReadTag() erro inesperado: %v", err)
		}
		switch field {
		case 1:
			gotVarint, err = d.ReadVarint()
		case 2:
			gotString, err = d.ReadString()
		case 3:
			gotBool, err = d.ReadBool()
		case 4:
			gotSub, err = d.ReadBytes()
		default:
			err = d.SkipField(field, wt)
		}
		if err != nil {
			t.Fatalf("campo %d: erro inesperado: %v", field, err)
		}
	}

	if gotVarint != 42 {
		t.Errorf("varint = %d, want 42", gotVarint)
	}
	if gotString != "Noite Estrelada" {
		t.Errorf("string = %q, want %q", gotString, "Noite Estrelada")
	}
	if !gotBool {
		t.Errorf("bool = false, want true")
	}
	if len(gotSub) != 2 || gotSub[0] != 0x08 {
		t.Errorf("submessage = %v, want [8 1]", gotSub)
	}
}

func TestZeroValuesAreOmitted(t *testing.T) {
	e := NewEncoder()
	e.Varint(1, 0)
	e.String(2, "")
	e.Bool(3, false)
	e.Submessage(4, nil)

	if got := len(e.Bytes()); got != 0 {
		t.Errorf("len(Bytes()) = %d, want 0: valores default não devem ser serializados", got)
	}
}

func TestSkipUnknownField(t *testing.T) {
	e := NewEncoder()
	e.Varint(7, 99)
	e.String(9, "desconhecido")
	e.Varint(1, 5)

	d := NewDecoder(e.Bytes())
	var got int64
	for !d.Done() {
		field, wt, err := d.ReadTag()
		if err != nil {
			t.Fatalf("ReadTag() erro: %v", err)
		}
		if field == 1 {
			got, err = d.ReadVarint()
		} else {
			err = d.SkipField(field, wt)
		}
		if err != nil {
			t.Fatalf("campo %d: erro: %v", field, err)
		}
	}
	if got != 5 {
		t.Errorf("campo 1 = %d, want 5 após pular campos desconhecidos", got)
	}
}

func TestTruncatedInput(t *testing.T) {
	e := NewEncoder()
	e.String(1, "uma legenda razoavelmente longa para truncar")
	full := e.Bytes()

	d := NewDecoder(full[:3])
	if _, _, err := d.ReadTag(); err != nil {
		t.Fatalf("ReadTag() no prefixo: %v", err)
	}
	if _, err := d.ReadString(); err == nil {
		t.Errorf("ReadString() em buffer truncado = nil, want erro")
	}
}

func TestDecoderReset(t *testing.T) {
	e := NewEncoder()
	e.Varint(1, 10)
	first := append([]byte(nil), e.Bytes()...)

	e.Reset()
	e.Varint(1, 20)

	if len(first) == 0 || len(e.Bytes()) == 0 {
		t.Fatalf("buffers vazios após Reset")
	}

	d := NewDecoder(e.Bytes())
	f, wt, err := d.ReadTag()
	if err != nil || f != 1 || wt != protowire.VarintType {
		t.Fatalf("ReadTag() = (%d, %v, %v), want (1, VarintType, nil)", f, wt, err)
	}
	v, err := d.ReadVarint()
	if err != nil || v != 20 {
		t.Errorf("ReadVarint() = (%d, %v), want (20, nil)", v, err)
	}
}
