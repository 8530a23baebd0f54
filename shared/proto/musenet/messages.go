// Package musenet define as mensagens do feed de acervo trocadas entre o
// servidor de catálogo e o cliente. A serialização segue o wire format do
// protobuf via shared/pkg/wirecodec, com Marshal/Unmarshal escritos à mão.
package musenet

import (
	"MuseumVision/shared/pkg/wirecodec"
)

// EnvelopeType identifica o conteúdo do payload de um Envelope.
type EnvelopeType int32

const (
	TypeUnknown       EnvelopeType = 0
	TypeServerStatus  EnvelopeType = 1
	TypeArtworkBatch  EnvelopeType = 2
	TypeRequestThemes EnvelopeType = 3
	TypePing          EnvelopeType = 4
	TypePong          EnvelopeType = 5
)

// Envelope é o contêiner de toda mensagem do feed.
type Envelope struct {
	Type    EnvelopeType
	Payload []byte
}

func (m *Envelope) Marshal() []byte {
	e := wirecodec.NewEncoder()
	e.Varint(1, int64(m.Type))
	e.Submessage(2, m.Payload)
	return e.Bytes()
}

func (m *Envelope) Unmarshal(data []byte) error {
	d := wirecodec.NewDecoder(data)
	for !d.Done() {
		field, wt, err := d.ReadTag()
		if err != nil {
			return err
		}
		switch field {
		case 1:
			v, err := d.ReadVarint()
			if err != nil {
				return err
			}
			m.Type = EnvelopeType(v)
		case 2:
			b, err := d.ReadBytes()
			if err != nil {
				return err
			}
			m.Payload = b
		default:
			if err := d.SkipField(field, wt); err != nil {
				return err
			}
		}
	}
	return nil
}

// ServerStatus informa o estado do servidor de catálogo ao cliente.
type ServerStatus struct {
	Message      string
	CatalogReady bool
	RecordCount  int32
}

func (m *ServerStatus) Marshal() []byte {
	e := wirecodec.NewEncoder()
	e.String(1, m.Message)
	e.Bool(2, m.CatalogReady)
	e.Varint(3, int64(m.RecordCount))
	return e.Bytes()
}

func (m *ServerStatus) Unmarshal(data []byte) error {
	d := wirecodec.NewDecoder(data)
	for !d.Done() {
		field, wt, err := d.ReadTag()
		if err != nil {
			return err
		}
		switch field {
		case 1:
			if m.Message, err = d.ReadString(); err != nil {
				return err
			}
		case 2:
			if m.CatalogReady, err = d.ReadBool(); err != nil {
				return err
			}
		case 3:
			v, err := d.ReadVarint()
			if err != nil {
				return err
			}
			m.RecordCount = int32(v)
		default:
			if err := d.SkipField(field, wt); err != nil {
				return err
			}
		}
	}
	return nil
}

// ArtworkRecord é a representação de uma obra no protocolo musenet.
type ArtworkRecord struct {
	ID          string
	Title       string
	Artist      string
	Description string
	Year        int32
	Source      string
	URL         string
	Themes      []string
}

func (m *ArtworkRecord) Marshal() []byte {
	e := wirecodec.NewEncoder()
	e.String(1, m.ID)
	e.String(2, m.Title)
	e.String(3, m.Artist)
	e.String(4, m.Description)
	e.Varint(5, int64(m.Year))
	e.String(6, m.Source)
	e.String(7, m.URL)
	for _, theme := range m.Themes {
		e.String(8, theme)
	}
	return e.Bytes()
}

func (m *ArtworkRecord) Unmarshal(data []byte) error {
	d := wirecodec.NewDecoder(data)
	for !d.Done() {
		field, wt, err := d.ReadTag()
		if err != nil {
			return err
		}
		switch field {
		case 1:
			if m.ID, err = d.ReadString(); err != nil {
				return err
			}
		case 2:
			if m.Title, err = d.ReadString(); err != nil {
				return err
			}
		case 3:
			if m.Artist, err = d.ReadString(); err != nil {
				return err
			}
		case 4:
			if m.Description, err = d.ReadString(); err != nil {
				return err
			}
		case 5:
			v, err := d.ReadVarint()
			if err != nil {
				return err
			}
			m.Year = int32(v)
		case 6:
			if m.Source, err = d.ReadString(); err != nil {
				return err
			}
		case 7:
			if m.URL, err = d.ReadString(); err != nil {
				return err
			}
		case 8:
			theme, err := d.ReadString()
			if err != nil {
				return err
			}
			m.Themes = append(m.Themes, theme)
		default:
			if err := d.SkipField(field, wt); err != nil {
				return err
			}
		}
	}
	return nil
}

// ArtworkBatch agrupa um lote de obras enviado pelo servidor.
type ArtworkBatch struct {
	Records []ArtworkRecord
}

func (m *ArtworkBatch) Marshal() []byte {
	e := wirecodec.NewEncoder()
	for i := range m.Records {
		e.Submessage(1, m.Records[i].Marshal())
	}
	return e.Bytes()
}

func (m *ArtworkBatch) Unmarshal(data []byte) error {
	d := wirecodec.NewDecoder(data)
	for !d.Done() {
		field, wt, err := d.ReadTag()
		if err != nil {
			return err
		}
		switch field {
		case 1:
			sub, err := d.ReadBytes()
			if err != nil {
				return err
			}
			var rec ArtworkRecord
			if err := rec.Unmarshal(sub); err != nil {
				return err
			}
			m.Records = append(m.Records, rec)
		default:
			if err := d.SkipField(field, wt); err != nil {
				return err
			}
		}
	}
	return nil
}

// RequestThemes é o pedido do cliente por obras de temas específicos.
type RequestThemes struct {
	Themes []string
	Count  int32
}

func (m *RequestThemes) Marshal() []byte {
	e := wirecodec.NewEncoder()
	for _, theme := range m.Themes {
		e.String(1, theme)
	}
	e.Varint(2, int64(m.Count))
	return e.Bytes()
}

func (m *RequestThemes) Unmarshal(data []byte) error {
	d := wirecodec.NewDecoder(data)
	for !d.Done() {
		field, wt, err := d.ReadTag()
		if err != nil {
			return err
		}
		switch field {
		case 1:
			theme, err := d.ReadString()
			if err != nil {
				return err
			}
			m.Themes = append(m.Themes, theme)
		case 2:
			v, err := d.ReadVarint()
			if err != nil {
				return err
			}
			m.Count = int32(v)
		default:
			if err := d.SkipField(field, wt); err != nil {
				return err
			}
		}
	}
	return nil
}
