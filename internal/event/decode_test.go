package event

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const assignedFrame = `{"type":"sku_assigned","timestamp":"2025-11-03T10:15:00Z","sorter_id":1,"data":{"skus":[` +
	`{"id":11,"sku":"A1","percentage":40.5,"is_assigned":true,"is_master_case":false,"sealer_id":3},` +
	`{"id":12,"sku":"B7","percentage":0,"is_assigned":false,"is_master_case":true,"sealer_id":null}]}}`

func TestClassify_Assignment(t *testing.T) {
	doc := Classify([]byte(assignedFrame))

	require.Equal(t, KindAssignment, doc.Kind)
	require.NoError(t, doc.Err)
	require.NotNil(t, doc.Assignment)

	ev := doc.Assignment
	assert.Equal(t, "2025-11-03T10:15:00Z", ev.Timestamp)
	assert.Equal(t, 1, ev.SorterID)
	require.Len(t, ev.Data.SKUs, 2)

	first := ev.Data.SKUs[0]
	assert.Equal(t, "A1", first.SKU)
	assert.InDelta(t, 40.5, first.Percentage, 1e-9)
	require.NotNil(t, first.SealerID)
	assert.Equal(t, 3, *first.SealerID)

	second := ev.Data.SKUs[1]
	assert.True(t, second.IsMasterCase)
	assert.Nil(t, second.SealerID)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want Kind
	}{
		{name: "not json", doc: `hello sorter`, want: KindMalformed},
		{name: "truncated json", doc: `{"type":"sku_assigned"`, want: KindMalformed},
		{name: "json array", doc: `[1,2,3]`, want: KindMalformed},
		{name: "flow stats", doc: `{"type":"sku_flow_stats","sorter_id":1,"data":{}}`, want: KindUnknown},
		{name: "box status", doc: `{"type":"box_status","sorter_id":1,"data":[]}`, want: KindUnknown},
		{name: "missing type", doc: `{"sorter_id":1}`, want: KindUnknown},
		{name: "heartbeat with numeric timestamp", doc: `{"type":"heartbeat","timestamp":1730628900}`, want: KindUnknown},
		{name: "string sorter id", doc: `{"type":"box_status","sorter_id":"1"}`, want: KindUnknown},
		{name: "numeric type", doc: `{"type":5}`, want: KindUnknown},
		{name: "null type", doc: `{"type":null,"data":{"skus":[]}}`, want: KindUnknown},
		{name: "json null", doc: `null`, want: KindMalformed},
		{name: "json string", doc: `"sku_assigned"`, want: KindMalformed},
		{name: "assignment with string sorter id", doc: `{"type":"sku_assigned","sorter_id":"1","data":{"skus":[]}}`, want: KindMalformed},
		{name: "assignment with null skus", doc: `{"type":"sku_assigned","data":{"skus":null}}`, want: KindMalformed},
		{name: "assignment without skus", doc: `{"type":"sku_assigned","data":{}}`, want: KindMalformed},
		{name: "assignment with salida list", doc: `{"type":"sku_assigned","data":[{"sealer_db_id":1}]}`, want: KindMalformed},
		{name: "assignment with empty skus", doc: `{"type":"sku_assigned","data":{"skus":[]}}`, want: KindAssignment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Classify([]byte(tt.doc))
			assert.Equal(t, tt.want, doc.Kind, "kind for %s", tt.doc)
			assert.Equal(t, tt.doc, doc.Raw)
			if tt.want == KindMalformed {
				assert.Error(t, doc.Err)
			} else {
				assert.NoError(t, doc.Err)
			}
		})
	}
}

func TestDecode_CoalescedFrame(t *testing.T) {
	frame := assignedFrame + "\n" + `{"type":"box_status","data":[]}` + "\n\n" + `not-json`

	docs := Decode([]byte(frame))

	require.Len(t, docs, 3)
	assert.Equal(t, KindAssignment, docs[0].Kind)
	assert.Equal(t, KindUnknown, docs[1].Kind)
	assert.Equal(t, KindMalformed, docs[2].Kind)
	assert.Equal(t, "not-json", docs[2].Raw)
}

func TestDecode_MultiLineDocument(t *testing.T) {
	frame := `{
  "type": "sku_assigned",
  "timestamp": "2025-11-03T10:15:00Z",
  "sorter_id": 1,
  "data": {
    "skus": [
      {"id": 11, "sku": "A1", "percentage": 40.5, "is_assigned": true, "is_master_case": false, "sealer_id": 3}
    ]
  }
}
`

	docs := Decode([]byte(frame))

	require.Len(t, docs, 1)
	require.Equal(t, KindAssignment, docs[0].Kind, "err: %v", docs[0].Err)
	require.Len(t, docs[0].Assignment.Data.SKUs, 1)
	assert.Equal(t, "A1", docs[0].Assignment.Data.SKUs[0].SKU)
	assert.Equal(t, strings.TrimSpace(frame), docs[0].Raw)
}

func TestDecode_CoalescedMultiLineDocuments(t *testing.T) {
	frame := "{\n\"type\": \"box_status\",\n\"data\": []\n}\n" + assignedFrame

	docs := Decode([]byte(frame))

	require.Len(t, docs, 2)
	assert.Equal(t, KindUnknown, docs[0].Kind)
	assert.Equal(t, KindAssignment, docs[1].Kind)
}

func TestDecode_InvalidFrameReportedWhole(t *testing.T) {
	frame := "not json\n" + assignedFrame

	docs := Decode([]byte(frame))

	require.Len(t, docs, 1)
	assert.Equal(t, KindMalformed, docs[0].Kind)
	assert.Equal(t, frame, docs[0].Raw)
	assert.Error(t, docs[0].Err)
}

func TestDecode_TrailingData(t *testing.T) {
	tests := []struct {
		name  string
		frame string
		kinds []Kind
		raw   string
	}{
		{name: "stray brace", frame: `}`, kinds: []Kind{KindMalformed}, raw: `}`},
		{name: "brace after document", frame: assignedFrame + "\n}", kinds: []Kind{KindAssignment, KindMalformed}, raw: `}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs := Decode([]byte(tt.frame))

			require.Len(t, docs, len(tt.kinds))
			for i, kind := range tt.kinds {
				assert.Equal(t, kind, docs[i].Kind, "document %d", i)
			}
			last := docs[len(docs)-1]
			assert.Equal(t, tt.raw, last.Raw)
			assert.ErrorIs(t, last.Err, ErrTrailingData)
		})
	}
}

func TestEnvelope_Name(t *testing.T) {
	assert.Equal(t, "sku_assigned", Envelope{Type: []byte(`"sku_assigned"`)}.Name())
	assert.Equal(t, "", Envelope{Type: []byte(`5`)}.Name())
	assert.Equal(t, "", Envelope{}.Name())
}

func TestDecode_EmptyFrame(t *testing.T) {
	docs := Decode([]byte("  \n "))

	require.Len(t, docs, 1)
	assert.Equal(t, KindMalformed, docs[0].Kind)
	assert.ErrorIs(t, docs[0].Err, ErrEmptyFrame)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "malformed", KindMalformed.String())
	assert.Equal(t, "unknown", KindUnknown.String())
	assert.Equal(t, "assignment", KindAssignment.String())
	assert.Equal(t, "invalid", Kind(42).String())
}
