package action

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	a := assert.New(t)

	act, err := FromString("raise")
	a.NoError(err)
	a.Equal(Raise, act)

	act, err = FromString("bet")
	a.EqualError(err, "unknown action for identifier: bet")
	a.Equal(Action(""), act)
}

func TestAction_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("Fold", Fold.String())
	a.Equal("Check", Check.String())
	a.Equal("Call", Call.String())
	a.Equal("Raise", Raise.String())
	a.PanicsWithValue("unknown action", func() {
		_ = Action("discard").String()
	})
}

func TestAction_JSON(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal(Call)
	a.NoError(err)
	a.Equal(`{"id":"call","name":"Call"}`, string(b))

	var act Action
	a.NoError(json.Unmarshal(b, &act))
	a.Equal(Call, act)

	a.NoError(json.Unmarshal([]byte(`"fold"`), &act))
	a.Equal(Fold, act)

	a.EqualError(json.Unmarshal([]byte(`"trade"`), &act), "unknown action for identifier: trade")
}

func TestAction_IsValid(t *testing.T) {
	assert.True(t, Check.IsValid())
	assert.False(t, Action("bet").IsValid())
}

func TestAction_LogMessage(t *testing.T) {
	a := assert.New(t)
	a.Equal("folded", Fold.LogMessage(0))
	a.Equal("checked", Check.LogMessage(0))
	a.Equal("called ${20}", Call.LogMessage(20))
	a.Equal("raised to ${60}", Raise.LogMessage(60))
	a.Equal("", Action("x").LogMessage(1))
}
