package sprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intervalrain/scheduler/adapter/cli"
)

func TestParseWorkDays(t *testing.T) {
	days, err := parseWorkDays("1, 2,3")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, days)

	days, err = parseWorkDays("")
	require.NoError(t, err)
	assert.Nil(t, days)

	_, err = parseWorkDays("mon")
	assert.ErrorContains(t, err, "invalid work day")
}

func TestCreateCmd_RequiresApp(t *testing.T) {
	cli.SetApp(nil)

	err := createCmd.RunE(createCmd, []string{"Sprint 1"})
	assert.ErrorIs(t, err, cli.ErrNotInitialized)
}
