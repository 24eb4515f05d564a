package lookup

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowtagger/internal/model"
)

func writeLookupFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lookup.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_BasicTable(t *testing.T) {
	path := writeLookupFile(t, "dstport,protocol,tag\n25,tcp,sv_P1\n68,udp,sv_P2\n443,tcp,sv_P2\n")

	table, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, table.Len())
	tag, ok := table.Tag(model.LookupKey{Port: "25", Protocol: "tcp"})
	require.True(t, ok)
	assert.Equal(t, "sv_P1", tag)

	// The header row must not become an entry.
	_, ok = table.Tag(model.LookupKey{Port: "dstport", Protocol: "protocol"})
	assert.False(t, ok)
}

func TestLoad_ProtocolLowercased(t *testing.T) {
	path := writeLookupFile(t, "dstport,protocol,tag\n80,TCP,web\n")

	table, err := Load(path)
	require.NoError(t, err)

	tag, ok := table.Tag(model.LookupKey{Port: "80", Protocol: "tcp"})
	require.True(t, ok)
	assert.Equal(t, "web", tag)
	_, ok = table.Tag(model.LookupKey{Port: "80", Protocol: "TCP"})
	assert.False(t, ok)
}

func TestLoad_DuplicateKeyLastWins(t *testing.T) {
	path := writeLookupFile(t, "dstport,protocol,tag\n25,tcp,first\n25,tcp,second\n")

	table, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1, table.Len())
	tag, _ := table.Tag(model.LookupKey{Port: "25", Protocol: "tcp"})
	assert.Equal(t, "second", tag)
}

func TestLoad_ExtraColumnsIgnored(t *testing.T) {
	path := writeLookupFile(t, "dstport,protocol,tag\n25,tcp,sv_P1,comment,more\n")

	table, err := Load(path)
	require.NoError(t, err)

	tag, ok := table.Tag(model.LookupKey{Port: "25", Protocol: "tcp"})
	require.True(t, ok)
	assert.Equal(t, "sv_P1", tag)
}

func TestLoad_ShortRowFailsWholeLoad(t *testing.T) {
	path := writeLookupFile(t, "dstport,protocol,tag\n25,tcp,sv_P1\n80,tcp\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRowTooShort)
	assert.Contains(t, err.Error(), "row 3")
}

func TestLoad_BlankLineFailsWholeLoad(t *testing.T) {
	path := writeLookupFile(t, "dstport,protocol,tag\n25,tcp,sv_P1\n\n53,udp,dns\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRowTooShort)
	assert.Contains(t, err.Error(), "row 3")
}

func TestLoad_TrailingBlankLineFailsWholeLoad(t *testing.T) {
	path := writeLookupFile(t, "dstport,protocol,tag\n25,tcp,sv_P1\n\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRowTooShort)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeLookupFile(t, "")

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingHeader)
}

func TestLoad_HeaderOnlyFile(t *testing.T) {
	path := writeLookupFile(t, "dstport,protocol,tag\n")

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoad_Deterministic(t *testing.T) {
	path := writeLookupFile(t, "dstport,protocol,tag\n25,tcp,sv_P1\n53,udp,dns\n")

	first, err := Load(path)
	require.NoError(t, err)
	second, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
