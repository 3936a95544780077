package mention

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractMentions(t *testing.T) {
	mentions := ExtractMentions("ping @Alice Johnson and @Bob Smith please")
	require.Equal(t, []string{"Alice Johnson", "Bob Smith"}, mentions)

	// single-word fragments are not mentions
	require.Empty(t, ExtractMentions("ping @Al please"))
	require.Empty(t, ExtractMentions("no mentions here"))
	require.Empty(t, ExtractMentions("email me at foo@example.com today"))

	mentions = ExtractMentions("@Henry Taylor")
	require.Equal(t, []string{"Henry Taylor"}, mentions)
}

func TestComposerSuggestsWhileTyping(t *testing.T) {
	c := NewComposer()

	c.SetText("looks good @al", 14)
	require.True(t, c.Showing())
	require.Equal(t, []string{"Alice Johnson"}, c.Strings())

	// whitespace between @ and cursor ends the query
	c.SetText("looks good @al ", 15)
	require.False(t, c.Showing())
}

func TestComposerKeyboardNavigation(t *testing.T) {
	c := NewComposer()
	c.SetText("@", 1)
	require.True(t, c.Showing())
	require.Len(t, c.Suggestions(), len(Roster))
	require.Equal(t, 0, c.Selected())

	// clamped at both ends, no wraparound
	c.MoveUp()
	require.Equal(t, 0, c.Selected())
	for i := 0; i < 20; i++ {
		c.MoveDown()
	}
	require.Equal(t, len(Roster)-1, c.Selected())
}

func TestComposerCommitReplacesFragment(t *testing.T) {
	c := NewComposer()
	c.SetText("thanks @ali for the intro", 11)
	require.True(t, c.Showing())

	require.True(t, c.Commit())
	require.Equal(t, "thanks @Alice Johnson  for the intro", c.Text())
	require.Equal(t, len("thanks @Alice Johnson "), c.Cursor())
	require.False(t, c.Showing())
}

func TestComposerEscapeDismissesWithoutEditing(t *testing.T) {
	c := NewComposer()
	c.SetText("cc @bob", 7)
	require.True(t, c.Showing())

	c.Dismiss()
	require.False(t, c.Showing())
	require.Equal(t, "cc @bob", c.Text())

	// commit after dismissal is a no-op
	require.False(t, c.Commit())
}

func TestComposerSubmitExtractsAndResets(t *testing.T) {
	c := NewComposer()
	c.SetText("ping @car", 9)
	require.True(t, c.Commit())

	text, mentions := c.Submit()
	require.Equal(t, "ping @Carol White ", text)
	require.Equal(t, []string{"Carol White"}, mentions)
	require.Empty(t, c.Text())
	require.Zero(t, c.Cursor())
}

func TestHighlightSplitsSegments(t *testing.T) {
	segments := Highlight("great call with @Alice Johnson today")
	require.Equal(t, []Segment{
		{Text: "great call with "},
		{Text: "@Alice Johnson", Mention: true},
		{Text: " today"},
	}, segments)

	segments = Highlight("no mentions")
	require.Equal(t, []Segment{{Text: "no mentions"}}, segments)

	segments = Highlight("@Bob Smith")
	require.Equal(t, []Segment{{Text: "@Bob Smith", Mention: true}}, segments)
}

func TestNoSuggestionsForUnknownQuery(t *testing.T) {
	c := NewComposer()
	c.SetText("@zzz", 4)
	require.False(t, c.Showing())
}
