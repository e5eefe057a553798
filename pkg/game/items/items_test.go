package items

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dungeonescape/pkg/game/locale"
)

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()

	potion := table.Lookup(HealthPotion)
	assert.Equal(t, KindConsumableHeal, potion.Kind)
	assert.Equal(t, 30, potion.Amount)
	assert.True(t, potion.Consumed())

	torch := table.Lookup(Torch)
	assert.Equal(t, KindCosmetic, torch.Kind)
	assert.False(t, torch.Consumed())

	m := table.Lookup(Map)
	assert.Equal(t, KindInformational, m.Kind)
	assert.False(t, m.Consumed())
	assert.Len(t, m.LineKeys, 4)

	sword := table.Lookup("sword")
	assert.Equal(t, KindGeneric, sword.Kind)
	assert.Empty(t, sword.LineKeys)
	assert.Equal(t, "USE_UNKNOWN", sword.MessageKey)
}

func TestRegister(t *testing.T) {
	table := NewTable()
	assert.Equal(t, KindGeneric, table.Lookup(Torch).Kind)

	table.Register("bandage", Effect{Kind: KindConsumableHeal, Amount: 5, MessageKey: "USE_HEAL"})
	assert.Equal(t, 5, table.Lookup("bandage").Amount)
}

// Every message key the default table refers to exists in the catalog.
func TestDefaultTableMessagesExist(t *testing.T) {
	table := DefaultTable()
	for _, name := range []string{HealthPotion, Torch, Map, "anything"} {
		e := table.Lookup(name)
		if e.MessageKey != "" && !locale.Has(e.MessageKey) {
			t.Errorf("%s: missing message %q", name, e.MessageKey)
		}
		for _, key := range e.LineKeys {
			if !locale.Has(key) {
				t.Errorf("%s: missing line %q", name, key)
			}
		}
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "consumable_heal", KindConsumableHeal.String())
	assert.Equal(t, "generic", KindGeneric.String())
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{HealthPotion, "health potion"},
		{Torch, "torch"},
		{"gold_key", "gold key"},
	}

	for _, tt := range tests {
		if got := DisplayName(tt.name); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
