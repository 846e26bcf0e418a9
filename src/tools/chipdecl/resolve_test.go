package chipdecl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(causes []Cause) []string {
	result := []string{}
	for _, c := range causes {
		result = append(result, c.Name)
	}
	return result
}

func TestResolveBaseTarget(t *testing.T) {
	def := mustParse(t, miniCatalog)
	c, err := def.Resolve("chipa")
	require.NoError(t, err)

	assert.Equal(t, "a", c.Family.Name)
	assert.False(t, c.Enabled("Extra"))
	assert.Equal(t, []string{"ResetPin", "Watchdog", "Lockup"}, names(c.Causes))
	assert.Equal(t, uint32(0b1011), c.All())
}

func TestResolveFeatureEnablesCause(t *testing.T) {
	def := mustParse(t, miniCatalog)
	c, err := def.Resolve("chipaplus")
	require.NoError(t, err)

	assert.True(t, c.Enabled("Extra"))
	extra, ok := c.Lookup("Extra")
	require.True(t, ok)
	assert.Equal(t, uint32(1<<4), extra.Mask())
}

func TestResolveAliasesAndOverrides(t *testing.T) {
	def := mustParse(t, miniCatalog)
	c, err := def.Resolve("chipb")
	require.NoError(t, err)

	assert.Equal(t, []string{"ResetPin", "WatchdogTimer0", "Watchdog", "Lockup", "Extra", "Moved"}, names(c.Causes))
	assert.Equal(t, []string{"ResetPin", "WatchdogTimer0", "Lockup", "Extra", "Moved"}, names(c.Primaries()))

	primary, _ := c.Lookup("WatchdogTimer0")
	alias, _ := c.Lookup("Watchdog")
	assert.Equal(t, primary.Mask(), alias.Mask())
	assert.Equal(t, "WatchdogTimer0", alias.AliasOf)

	moved, _ := c.Lookup("Moved")
	assert.Equal(t, 7, moved.Bit)
}

// scenario from the register description: ResetPin=0x1, Watchdog=0x2,
// Lockup=0x8 and a register holding 0b1010.
func TestDecode(t *testing.T) {
	def := mustParse(t, miniCatalog)
	c, err := def.Resolve("chipa")
	require.NoError(t, err)

	d := c.Decode(0b1010)
	assert.Equal(t, []string{"Watchdog", "Lockup"}, d.Causes)
	assert.Zero(t, d.Unknown)
	assert.False(t, d.PowerOn())
	assert.Equal(t, "0x0000000a Watchdog|Lockup", d.String())

	d = c.Decode(0x80000001)
	assert.Equal(t, []string{"ResetPin"}, d.Causes)
	assert.Equal(t, uint32(0x80000000), d.Unknown)
	assert.Equal(t, "0x80000001 ResetPin|unknown=0x80000000", d.String())

	d = c.Decode(0)
	assert.True(t, d.PowerOn())
	assert.Empty(t, d.Causes)
	assert.Equal(t, "0x00000000 PowerOn", d.String())
}

func TestDecodeUsesPrimaryNames(t *testing.T) {
	def := mustParse(t, miniCatalog)
	c, err := def.Resolve("chipb")
	require.NoError(t, err)
	assert.Equal(t, []string{"WatchdogTimer0"}, c.Decode(0b10).Causes)
}

func TestResolveErrors(t *testing.T) {
	cases := []struct {
		name    string
		targets string
		want    error
	}{
		{"unknown target", "", ErrUnknownTarget},
		{"no family", `
  - {name: x, tag: x, capabilities: [A_HAS_EXTRA]}`, ErrContradictory},
		{"both families", `
  - {name: x, tag: x, capabilities: [A_PRESENT, B_PRESENT]}`, ErrContradictory},
		{"symbol from the other family", `
  - {name: x, tag: x, capabilities: [A_PRESENT, B_HAS_EXTRA]}`, ErrContradictory},
		{"unrecognized symbol", `
  - {name: x, tag: x, capabilities: [A_PRESENT, A_HAS_TELEPORT]}`, ErrUnknownCapability},
		{"missing bit", `
  - {name: x, tag: x, capabilities: [B_PRESENT, B_HAS_MOVED]}`, ErrMissingBit},
		{"bit out of range", `
  - {name: x, tag: x, capabilities: [A_PRESENT], bits: {Lockup: 32}}`, ErrBitRange},
		{"overlapping bits", `
  - {name: x, tag: x, capabilities: [A_PRESENT], bits: {Lockup: 1}}`, ErrBitOverlap},
		{"override of a cause from elsewhere", `
  - {name: x, tag: x, capabilities: [A_PRESENT], bits: {Moved: 9}}`, ErrDeclaration},
	}
	base := miniCatalog[:strings.Index(miniCatalog, "targets:")]
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			def := mustParse(t, base+"targets:"+tc.targets+"\n")
			_, err := def.Resolve("x")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDefaultCatalogResolvesEveryTarget(t *testing.T) {
	def, err := Default()
	require.NoError(t, err)
	all, err := def.ResolveAll()
	require.NoError(t, err)
	require.Len(t, all, len(def.Targets))

	always := []string{"ResetPin", "Watchdog", "SoftReset", "Lockup", "WakeFromOff", "DebugInterfaceEntered"}
	for _, c := range all {
		seen := uint32(0)
		for _, cause := range c.Primaries() {
			assert.Zero(t, seen&cause.Mask(), "%s: %s shares a bit", c.Target.Tag, cause.Name)
			seen |= cause.Mask()
		}
		for _, name := range always {
			_, ok := c.Lookup(name)
			assert.True(t, ok, "%s lacks %s", c.Target.Tag, name)
		}
	}
}

func TestDefaultCatalogFamilies(t *testing.T) {
	def, err := Default()
	require.NoError(t, err)

	power := []string{"nrf51", "nrf52810", "nrf52", "nrf52833", "nrf52840", "nrf9160"}
	reset := []string{"nrf5340_app", "nrf5340_net", "nrf54l15"}
	for _, tag := range power {
		c, err := def.Resolve(tag)
		require.NoError(t, err)
		assert.Equal(t, "FamilyPower", c.Family.GoName, tag)
		assert.False(t, c.Enabled("Network"), tag)
	}
	for _, tag := range reset {
		c, err := def.Resolve(tag)
		require.NoError(t, err)
		assert.Equal(t, "FamilyReset", c.Family.GoName, tag)
		w0, _ := c.Lookup("WatchdogTimer0")
		w, _ := c.Lookup("Watchdog")
		assert.Equal(t, w0.Mask(), w.Mask(), tag)
	}

	nrf5340, err := def.Resolve("nrf5340_app")
	require.NoError(t, err)
	assert.True(t, nrf5340.Enabled("Network"))
	lockup, _ := nrf5340.Lookup("NetworkCpuLockup")
	assert.Equal(t, uint32(1<<9), lockup.Mask())

	nrf52810, err := def.Resolve("nrf52810")
	require.NoError(t, err)
	_, ok := nrf52810.Lookup("NfcFieldDetected")
	assert.False(t, ok)
}
