// Package wirecodec embrulha as primitivas de wire format do protobuf
// (google.golang.org/protobuf/encoding/protowire) em um par Encoder/Decoder
// orientado a campos. As mensagens do feed de acervo escrevem seus próprios
// Marshal/Unmarshal sobre este pacote em vez de depender de código gerado.
package wirecodec

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

var errTruncated = errors.New("wirecodec: mensagem truncada")

// ---------- ENCODER ----------

// Encoder acumula campos no formato de wire do protobuf.
type Encoder struct {
	buf []byte
}

// NewEncoder cria um encoder vazio.
func NewEncoder() *Encoder {
	return &Encoder{buf: make([]byte, 0, 128)}
}

// Bytes retorna o buffer serializado.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Reset limpa o buffer para reuso.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
}

// Varint codifica um campo varint (int32/int64/enum). Zero não é
// serializado, seguindo a semântica proto3 de valor default.
func (e *Encoder) Varint(field int, v int64) {
	if v == 0 {
		return
	}
	e.buf = protowire.AppendTag(e.buf, protowire.Number(field), protowire.VarintType)
	e.buf = protowire.AppendVarint(e.buf, uint64(v))
}

// Bool codifica um campo booleano; false não é serializado.
func (e *Encoder) Bool(field int, v bool) {
	if !v {
		return
	}
	e.buf = protowire.AppendTag(e.buf, protowire.Number(field), protowire.VarintType)
	e.buf = protowire.AppendVarint(e.buf, 1)
}

// String codifica um campo de texto; vazio não é serializado.
func (e *Encoder) String(field int, v string) {
	if v == "" {
		return
	}
	e.buf = protowire.AppendTag(e.buf, protowire.Number(field), protowire.BytesType)
	e.buf = protowire.AppendString(e.buf, v)
}

// Submessage codifica uma submensagem já serializada (length-delimited).
func (e *Encoder) Submessage(field int, sub []byte) {
	if len(sub) == 0 {
		return
	}
	e.buf = protowire.AppendTag(e.buf, protowire.Number(field), protowire.BytesType)
	e.buf = protowire.AppendBytes(e.buf, sub)
}

// ---------- DECODER ----------

// Decoder percorre campos protobuf de um buffer.
type Decoder struct {
	buf []byte
	pos int
}

// NewDecoder cria um decoder sobre um buffer.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

// Done retorna true quando não restam bytes.
func (d *Decoder) Done() bool {
	return d.pos >= len(d.buf)
}

// ReadTag lê o número do campo e o wire type do próximo campo.
func (d *Decoder) ReadTag() (field int, wireType protowire.Type, err error) {
	num, typ, n := protowire.ConsumeTag(d.buf[d.pos:])
	if n < 0 {
		return 0, 0, fmt.Errorf("wirecodec: tag inválida: %w", protowire.ParseError(n))
	}
	d.pos += n
	return int(num), typ, nil
}

// ReadVarint lê um valor varint (após o tag).
func (d *Decoder) ReadVarint() (int64, error) {
	v, n := protowire.ConsumeVarint(d.buf[d.pos:])
	if n < 0 {
		return 0, errTruncated
	}
	d.pos += n
	return int64(v), nil
}

// ReadBool lê um booleano.
func (d *Decoder) ReadBool() (bool, error) {
	v, err := d.ReadVarint()
	return v != 0, err
}

// ReadBytes lê um campo length-delimited.
func (d *Decoder) ReadBytes() ([]byte, error) {
	v, n := protowire.ConsumeBytes(d.buf[d.pos:])
	if n < 0 {
		return nil, errTruncated
	}
	d.pos += n
	return v, nil
}

// ReadString lê uma string.
func (d *Decoder) ReadString() (string, error) {
	b, err := d.ReadBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// SkipField pula um campo desconhecido preservando compatibilidade com
// versões futuras das mensagens.
func (d *Decoder) SkipField(field int, wireType protowire.Type) error {
	n := protowire.ConsumeFieldValue(protowire.Number(field), wireType, d.buf[d.pos:])
	if n < 0 {
		return fmt.Errorf("wirecodec: campo %d não pôde ser pulado: %w", field, protowire.ParseError(n))
	}
	d.pos += n
	return nil
}
