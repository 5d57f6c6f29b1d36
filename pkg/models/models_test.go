package models_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/little-samo/samo-api/pkg/models"
)

// ─── IDs ─────────────────────────────────────────────────────

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    models.ID
		wantErr bool
	}{
		{`12`, 12, false},
		{`"12"`, 12, false},
		{`" 12 "`, 12, false},
		{`"9007199254740993"`, 9007199254740993, false},
		{`null`, 0, true},
		{`"abc"`, 0, true},
		{`1.5`, 0, true},
		{`""`, 0, true},
	}
	for _, tt := range tests {
		var id models.ID
		err := json.Unmarshal([]byte(tt.in), &id)
		if tt.wantErr {
			assert.ErrorIs(t, err, models.ErrInvalidID, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, id, tt.in)
	}
}

func TestID_MarshalsAsString(t *testing.T) {
	b, err := json.Marshal(struct {
		ID models.AgentID `json:"id"`
	}{ID: 42})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"42"}`, string(b))
}

func TestIDList(t *testing.T) {
	l, err := models.ParseIDList("1, 2,3")
	require.NoError(t, err)
	assert.Equal(t, models.IDList{1, 2, 3}, l)

	text, err := l.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1,2,3", string(text))

	l, err = models.ParseIDList("1,2, ")
	require.NoError(t, err)
	assert.Equal(t, models.IDList{1, 2, 0}, l)

	_, err = models.ParseIDList("1,x")
	assert.ErrorIs(t, err, models.ErrInvalidID)
}

func TestTextLen(t *testing.T) {
	assert.Equal(t, 0, models.TextLen(""))
	assert.Equal(t, 5, models.TextLen("hello"))
	assert.Equal(t, 2, models.TextLen("가나"))
	assert.Equal(t, 4, models.TextLen("😀😀"))
	assert.Equal(t, 3, models.TextLen("a🎉"))
}

func TestLenientIntList(t *testing.T) {
	var l models.LenientIntList
	require.NoError(t, l.UnmarshalText([]byte("3,abc, 7x,-2")))
	assert.Equal(t, models.LenientIntList{3, 7, -2}, l)
}

func TestCSV(t *testing.T) {
	var c models.CSV
	require.NoError(t, c.UnmarshalText([]byte("a, b ,c")))
	assert.Equal(t, models.CSV{"a", "b", "c"}, c)
}

// ─── Nullable ────────────────────────────────────────────────

type patch struct {
	Rendering models.Nullable[string] `json:"rendering,omitzero"`
}

func TestNullable_ThreeStates(t *testing.T) {
	var absent, null, set patch
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	require.NoError(t, json.Unmarshal([]byte(`{"rendering":null}`), &null))
	require.NoError(t, json.Unmarshal([]byte(`{"rendering":"x"}`), &set))

	assert.False(t, absent.Rendering.Set)
	assert.True(t, null.Rendering.Set)
	assert.False(t, null.Rendering.Valid)
	assert.Equal(t, models.Some("x"), set.Rendering)
	assert.Nil(t, null.Rendering.Ptr())

	for in, want := range map[*patch]string{&absent: `{}`, &null: `{"rendering":null}`, &set: `{"rendering":"x"}`} {
		b, err := json.Marshal(in)
		require.NoError(t, err)
		assert.JSONEq(t, want, string(b))
	}
}

func TestFlexTime(t *testing.T) {
	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{`"2024-03-01T00:00:00Z"`, `"2024-03-01"`, `1709251200000`} {
		var ft models.FlexTime
		require.NoError(t, json.Unmarshal([]byte(in), &ft), in)
		assert.True(t, want.Equal(ft.Time), in)
	}

	var ft models.FlexTime
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ft))
}

// ─── Credentials ─────────────────────────────────────────────

func TestAgentCredential(t *testing.T) {
	var c models.AgentCredential
	require.NoError(t, json.Unmarshal([]byte(`{"type":"x_twitter","email":"a@b.c","password":"p","username":"u"}`), &c))
	x, ok := c.Credential.(*models.XTwitterCredential)
	require.True(t, ok)
	assert.Equal(t, "u", x.Username)

	b, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"x_twitter","email":"a@b.c","password":"p","username":"u"}`, string(b))
}

func TestLocationCredential_RejectsTwitter(t *testing.T) {
	var c models.LocationCredential
	err := json.Unmarshal([]byte(`{"type":"x_twitter","email":"a"}`), &c)
	assert.ErrorIs(t, err, models.ErrUnknownCredentialType)

	require.NoError(t, json.Unmarshal([]byte(`{"type":"notion","token":"t"}`), &c))
	assert.Equal(t, models.CredentialNotion, c.CredentialType())
}

// ─── Character & strict patches ──────────────────────────────

func TestCharacter(t *testing.T) {
	var c models.Character
	require.NoError(t, json.Unmarshal([]byte(`{"background":{"role":"chef"},"motto":"eat well"}`), &c))
	assert.True(t, c["background"].IsSection())
	assert.Equal(t, "chef", c["background"].Fields["role"])
	assert.Equal(t, "eat well", c["motto"].Text)

	err := json.Unmarshal([]byte(`{"speech":"loud"}`), &c)
	assert.ErrorContains(t, err, "character.speech must be an object")

	long := strings.Repeat("x", models.CharacterPropertyMaxLen+1)
	c = models.Character{
		"speech": {Fields: map[string]string{"tone": long}},
		"motto":  {Text: long},
		"ok":     {Text: "fine"},
	}
	assert.Equal(t, []string{"motto", "speech.tone"}, c.Oversized(models.CharacterPropertyMaxLen))
}

func TestStrictAgentConfigPatch(t *testing.T) {
	var p models.StrictAgentConfigPatch
	err := json.Unmarshal([]byte(`{"name":"a","zeta":1,"alpha":2}`), &p)
	var uk *models.UnknownKeysError
	require.True(t, errors.As(err, &uk))
	assert.Equal(t, []string{"alpha", "zeta"}, uk.Keys)

	require.NoError(t, json.Unmarshal([]byte(`{"name":"a"}`), &p))
	require.NotNil(t, p.Name)
	assert.Equal(t, "a", *p.Name)
}

func TestIsPredefinedAvatar(t *testing.T) {
	assert.True(t, models.IsPredefinedAvatar("Casimo"))
	assert.False(t, models.IsPredefinedAvatar("casimo"))
}

// ─── Events ──────────────────────────────────────────────────

func TestLocationEvent_RoundTrip(t *testing.T) {
	ev := &models.LocationAgentExecutedEvent{AgentID: 4, Success: true}
	ev.LocationID = 9

	b, err := models.EncodeLocationEvent(ev)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"type":"AgentExecuted"`)

	got, err := models.DecodeLocationEvent(b)
	require.NoError(t, err)
	executed, ok := got.(*models.LocationAgentExecutedEvent)
	require.True(t, ok)
	assert.Equal(t, models.AgentID(4), executed.AgentID)
	assert.Equal(t, models.LocationID(9), executed.LocationID)
}

func TestDecodeLocationEvent_Errors(t *testing.T) {
	_, err := models.DecodeLocationEvent([]byte(`{"locationId":"1"}`))
	assert.ErrorIs(t, err, models.ErrMissingEventType)

	_, err = models.DecodeLocationEvent([]byte(`{"type":"Exploded"}`))
	assert.ErrorIs(t, err, models.ErrUnknownEventType)
}

func TestUserItemEvent_Nested(t *testing.T) {
	data := []byte(`{"type":"ItemEvent","userId":3,"itemEvent":{"type":"Created","itemId":5,"item":{"id":5,"name":"Lamp"}}}`)

	ev, err := models.DecodeUserEvent(data)
	require.NoError(t, err)
	ie, ok := ev.(*models.UserItemEvent)
	require.True(t, ok)
	created, ok := ie.ItemEvent.(*models.ItemCreatedEvent)
	require.True(t, ok)
	assert.Equal(t, "Lamp", created.Item.Name)

	_, err = models.DecodeUserEvent([]byte(`{"type":"ItemEvent","userId":3}`))
	assert.ErrorIs(t, err, models.ErrMissingEventType)
}
