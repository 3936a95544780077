package mention

// Composer tracks the note text, the cursor, and the live suggestion list
// while the user types. It is a plain state machine with no I/O; the view
// layer feeds it keystrokes and reads back text, cursor and suggestions.
type Composer struct {
	roster []Member

	text        string
	cursor      int
	triggerAt   int
	suggestions []Member
	selected    int
	showing     bool
}

func NewComposer() *Composer {
	return NewComposerWithRoster(Roster)
}

func NewComposerWithRoster(roster []Member) *Composer {
	return &Composer{roster: roster, triggerAt: -1}
}

// SetText updates the text and cursor position, then rescans for an active
// mention: the nearest "@" before the cursor with no whitespace between it
// and the cursor. When found, the text between them becomes a live query
// against the roster.
func (c *Composer) SetText(text string, cursor int) {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(text) {
		cursor = len(text)
	}
	c.text = text
	c.cursor = cursor

	at := -1
	for i := cursor - 1; i >= 0; i-- {
		ch := text[i]
		if ch == '@' {
			at = i
			break
		}
		if ch == ' ' || ch == '\t' || ch == '\n' {
			break
		}
	}

	if at < 0 {
		c.dismiss()
		return
	}

	query := text[at+1 : cursor]
	matches := search(c.roster, query)
	if len(matches) == 0 {
		c.dismiss()
		return
	}

	c.triggerAt = at
	c.suggestions = matches
	c.showing = true
	if c.selected >= len(matches) {
		c.selected = len(matches) - 1
	}
}

// Showing reports whether the suggestion list is up.
func (c *Composer) Showing() bool {
	return c.showing
}

// Suggestions returns the current matches in roster order.
func (c *Composer) Suggestions() []Member {
	if !c.showing {
		return nil
	}
	return append([]Member(nil), c.suggestions...)
}

// Selected returns the index of the highlighted suggestion.
func (c *Composer) Selected() int {
	return c.selected
}

// MoveDown and MoveUp shift the highlighted selection, clamped to the list
// bounds with no wraparound.
func (c *Composer) MoveDown() {
	if !c.showing {
		return
	}
	if c.selected < len(c.suggestions)-1 {
		c.selected++
	}
}

func (c *Composer) MoveUp() {
	if !c.showing {
		return
	}
	if c.selected > 0 {
		c.selected--
	}
}

// Commit replaces the text from the triggering "@" through the cursor with
// "@FullName " and puts the cursor right after the trailing space. Returns
// false when no suggestion list is showing.
func (c *Composer) Commit() bool {
	if !c.showing {
		return false
	}

	member := c.suggestions[c.selected]
	inserted := "@" + member.Name + " "
	c.text = c.text[:c.triggerAt] + inserted + c.text[c.cursor:]
	c.cursor = c.triggerAt + len(inserted)
	c.dismiss()
	return true
}

// Dismiss hides the suggestion list without modifying the text.
func (c *Composer) Dismiss() {
	c.dismiss()
}

func (c *Composer) dismiss() {
	c.showing = false
	c.suggestions = nil
	c.selected = 0
	c.triggerAt = -1
}

// Text returns the composed text.
func (c *Composer) Text() string {
	return c.text
}

// Cursor returns the cursor position.
func (c *Composer) Cursor() int {
	return c.cursor
}

// Submit returns the final text and the mentions extracted from it, and
// resets the composer for the next note.
func (c *Composer) Submit() (string, []string) {
	text := c.text
	mentions := ExtractMentions(text)
	c.text = ""
	c.cursor = 0
	c.dismiss()
	return text, mentions
}

// isUpper and isLetter work on the ASCII names the roster uses.
func isUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// ExtractMentions finds every "@First Last" token in the text: a capitalized
// word pair separated by one space. Single-word fragments and names with a
// different token count are not recognized, even if they were chosen from
// the suggestion list.
func ExtractMentions(text string) []string {
	mentions := make([]string, 0)
	for i := 0; i < len(text); i++ {
		if text[i] != '@' {
			continue
		}
		name, end := matchNamePair(text, i+1)
		if name == "" {
			continue
		}
		mentions = append(mentions, name)
		i = end - 1
	}
	return mentions
}

// matchNamePair matches "Xxxx Yyyy" starting at position start and returns
// the matched name plus the index just past it, or "" when there is no
// capitalized two-word pair there.
func matchNamePair(text string, start int) (string, int) {
	first, i := matchWord(text, start)
	if first == "" || i >= len(text) || text[i] != ' ' {
		return "", 0
	}
	second, j := matchWord(text, i+1)
	if second == "" {
		return "", 0
	}
	return first + " " + second, j
}

func matchWord(text string, start int) (string, int) {
	if start >= len(text) || !isUpper(text[start]) {
		return "", 0
	}
	i := start + 1
	for i < len(text) && isLetter(text[i]) {
		i++
	}
	return text[start:i], i
}

// Segment is one rendered slice of a note's text.
type Segment struct {
	Text    string
	Mention bool
}

// Highlight splits text into plain and mention segments so the view layer
// can style mention tokens. The mention segments include the leading "@".
func Highlight(text string) []Segment {
	segments := make([]Segment, 0)
	plainStart := 0

	for i := 0; i < len(text); i++ {
		if text[i] != '@' {
			continue
		}
		name, end := matchNamePair(text, i+1)
		if name == "" {
			continue
		}
		if i > plainStart {
			segments = append(segments, Segment{Text: text[plainStart:i]})
		}
		segments = append(segments, Segment{Text: "@" + name, Mention: true})
		plainStart = end
		i = end - 1
	}

	if plainStart < len(text) {
		segments = append(segments, Segment{Text: text[plainStart:]})
	}
	return segments
}

// Strings returns the suggestion names, a convenience for plain-text views.
func (c *Composer) Strings() []string {
	if !c.showing {
		return nil
	}
	names := make([]string, len(c.suggestions))
	for i, m := range c.suggestions {
		names[i] = m.Name
	}
	return names
}
