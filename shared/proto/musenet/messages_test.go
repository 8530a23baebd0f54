package musenet

import (
	"reflect"
	"testing"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	status := ServerStatus{Message: "catálogo pronto", CatalogReady: true, RecordCount: 12}
	env := Envelope{Type: TypeServerStatus, Payload: status.Marshal()}

	var got Envelope
	if err := got.Unmarshal(env.Marshal()); err != nil {
		t.Fatalf("Envelope.Unmarshal() erro: %v", err)
	}
	if got.Type != TypeServerStatus {
		t.Errorf("Type = %d, want %d", got.Type, TypeServerStatus)
	}

	var gotStatus ServerStatus
	if err := gotStatus.Unmarshal(got.Payload); err != nil {
		t.Fatalf("ServerStatus.Unmarshal() erro: %v", err)
	}
	if gotStatus != status {
		t.Errorf("ServerStatus = %+v, want %+v", gotStatus, status)
	}
}

func TestArtworkBatchRoundTrip(t *testing.T) {
	batch := ArtworkBatch{
		Records: []ArtworkRecord{
			{
				ID:          "mv_0101",
				Title:       "Abaporu",
				Artist:      "Tarsila do Amaral",
				Description: "Óleo sobre tela, figura de proporções oníricas",
				Year:        1928,
				Source:      "Coleção MALBA",
				URL:         "procgen://mv_0101",
				Themes:      []string{"modern", "portrait"},
			},
			{
				ID:     "mv_0102",
				Title:  "Sem título",
				Artist: "Desconhecido",
				Themes: []string{"general"},
			},
		},
	}

	var got ArtworkBatch
	if err := got.Unmarshal(batch.Marshal()); err != nil {
		t.Fatalf("ArtworkBatch.Unmarshal() erro: %v", err)
	}
	if len(got.Records) != 2 {
		t.Fatalf("len(Records) = %d, want 2", len(got.Records))
	}
	if !reflect.DeepEqual(got.Records[0], batch.Records[0]) {
		t.Errorf("Records[0] = %+v, want %+v", got.Records[0], batch.Records[0])
	}
	if got.Records[1].Artist != "Desconhecido" || got.Records[1].Year != 0 {
		t.Errorf("Records[1] = %+v, campos default corrompidos", got.Records[1])
	}
}

func TestRequestThemesRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		req  RequestThemes
	}{
		{"temas múltiplos", RequestThemes{Themes: []string{"classical", "sculpture"}, Count: 9}},
		{"tema único", RequestThemes{Themes: []string{"abstract"}, Count: 1}},
		{"vazio", RequestThemes{}},
	}

	for _, tt := range tests {
		var got RequestThemes
		if err := got.Unmarshal(tt.req.Marshal()); err != nil {
			t.Errorf("%s: Unmarshal() erro: %v", tt.name, err)
			continue
		}
		if !reflect.DeepEqual(got.Themes, tt.req.Themes) || got.Count != tt.req.Count {
			t.Errorf("%s: got %+v, want %+v", tt.name, got, tt.req)
		}
	}
}

func TestEnvelopeEmptyPayload(t *testing.T) {
	env := Envelope{Type: TypePing}
	var got Envelope
	if err := got.Unmarshal(env.Marshal()); err != nil {
		t.Fatalf("Unmarshal() erro: %v", err)
	}
	if got.Type != TypePing || len(got.Payload) != 0 {
		t.Errorf("got = %+v, want Type=%d sem payload", got, TypePing)
	}
}
