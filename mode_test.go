package recordstore

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModeFlags(t *testing.T) {
	require.Equal(t, os.O_RDONLY, ModeReadOnly.flags())
	require.Equal(t, os.O_RDWR, ModeReadWrite.flags())
	require.Equal(t, os.O_RDWR|os.O_SYNC, ModeSyncData.flags())
	require.Equal(t, os.O_RDWR|os.O_SYNC, ModeSyncMetadata.flags())
}

func TestModeString(t *testing.T) {
	require.Equal(t, "read-only", ModeReadOnly.String())
	require.Equal(t, "read-write", ModeReadWrite.String())
	require.Equal(t, "sync-data", ModeSyncData.String())
	require.Equal(t, "sync-metadata", ModeSyncMetadata.String())
	require.Equal(t, "unknown", Mode(99).String())
}
