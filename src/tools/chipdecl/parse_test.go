package chipdecl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const miniCatalog = `
package: resetreason
families:
  - name: a
    goName: FamilyA
    peripheral: POWER
    register: RESETREAS
    selector: A_PRESENT
    capabilities: [A_HAS_EXTRA]
    causes:
      - name: ResetPin
        bit: 0
        description: reports a pin reset.
      - name: Watchdog
        bit: 1
        description: reports a watchdog reset.
      - name: Lockup
        bit: 3
        description: reports a lockup.
      - name: Extra
        bit: 4
        feature: Extra
        description: reports the extra cause.
  - name: b
    goName: FamilyB
    peripheral: RESET
    register: RESETREAS
    selector: B_PRESENT
    capabilities: [B_HAS_EXTRA, B_HAS_MOVED]
    causes:
      - name: ResetPin
        bit: 0
        description: reports a pin reset.
      - name: WatchdogTimer0
        bit: 1
        description: reports a watchdog reset.
        aliases:
          - name: Watchdog
      - name: Lockup
        bit: 2
        description: reports a lockup.
      - name: Extra
        bit: 5
        feature: Extra
        description: reports the extra cause.
      - name: Moved
        feature: Moved
        description: has no default position.
features:
  - name: Extra
    description: the extra cause is recorded.
    when: [A_HAS_EXTRA, B_HAS_EXTRA]
  - name: Moved
    description: the moved cause is recorded.
    when: [B_HAS_MOVED]
targets:
  - name: chip a
    tag: chipa
    address: 0x40000400
    capabilities: [A_PRESENT]
  - name: chip a plus
    tag: chipaplus
    address: 0x40000400
    capabilities: [A_PRESENT, A_HAS_EXTRA]
  - name: chip b
    tag: chipb
    address: 0x50005400
    capabilities: [B_PRESENT, B_HAS_EXTRA, B_HAS_MOVED]
    bits:
      Moved: 7
`

func mustParse(t *testing.T, text string) *CatalogDef {
	t.Helper()
	def, err := Parse([]byte(text))
	require.NoError(t, err)
	return def
}

func TestParseMiniCatalog(t *testing.T) {
	def := mustParse(t, miniCatalog)

	assert.Equal(t, "resetreason", def.Package)
	require.Len(t, def.Families, 2)
	require.Len(t, def.Targets, 3)
	assert.Equal(t, []string{"chipa", "chipaplus", "chipb"}, def.Tags())
	assert.Equal(t, uint32(0x50005400), def.Targets[2].Address)
	assert.Equal(t, map[string]int{"Moved": 7}, def.Targets[2].Bits)
	assert.Nil(t, def.Families[1].Causes[4].Bit)
	assert.Equal(t, "HasExtra", def.Features[0].GoName())
}

func TestParseRejectsBadDeclarations(t *testing.T) {
	cases := map[string]string{
		"no package": `
families:
  - {name: a, goName: FamilyA, selector: A}
`,
		"undeclared feature": `
package: p
families:
  - name: a
    goName: FamilyA
    selector: A
    causes:
      - {name: X, bit: 0, feature: Nope}
`,
		"capability in two families": `
package: p
families:
  - {name: a, goName: FamilyA, selector: A, capabilities: [SHARED]}
  - {name: b, goName: FamilyB, selector: B, capabilities: [SHARED]}
`,
		"alias collides with cause": `
package: p
families:
  - name: a
    goName: FamilyA
    selector: A
    causes:
      - {name: X, bit: 0}
      - {name: Y, bit: 1, aliases: [{name: X}]}
`,
		"feature on unknown symbol": `
package: p
families:
  - {name: a, goName: FamilyA, selector: A}
features:
  - {name: F, when: [MISSING]}
`,
		"duplicate tag": `
package: p
families:
  - {name: a, goName: FamilyA, selector: A}
targets:
  - {name: one, tag: t, capabilities: [A]}
  - {name: two, tag: t, capabilities: [A]}
`,
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(text))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDeclaration), "got %v", err)
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("families: [unterminated"))
	assert.Error(t, err)
}

func TestDefaultCatalogLoads(t *testing.T) {
	def, err := Default()
	require.NoError(t, err)
	assert.Equal(t, DefaultFilename, def.SourceFilename)
	assert.Equal(t, []string{
		"nrf51", "nrf52810", "nrf52", "nrf52833", "nrf52840",
		"nrf9160", "nrf5340_app", "nrf5340_net", "nrf54l15",
	}, def.Tags())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("does-not-exist.yaml")
	assert.Error(t, err)
}
