package pkg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateSlug(t *testing.T) {
	require.Equal(t, "senior-react-developer", GenerateSlug("Senior React Developer"))
	require.Equal(t, "ui-ux-designer", GenerateSlug("UI/UX Designer"))
	require.Equal(t, "c-developer", GenerateSlug("  C++ Developer!  "))
	require.Equal(t, "untitled-job", GenerateSlug("!!!"))
	require.Equal(t, "untitled-job", GenerateSlug(""))
}

func TestJobSlug(t *testing.T) {
	require.Equal(t, "senior-react-developer-1", JobSlug("Senior React Developer", "1"))
	require.Equal(t, "backend-engineer-abc123", JobSlug("Backend Engineer", "abc123def456"))
}
