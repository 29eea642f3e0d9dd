package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	t.Run("structured conversation", func(t *testing.T) {
		assert.Equal(t, CategoryStructured, Categorize(`{"user":"hi","ai_output":"hello"}`))
	})

	t.Run("json missing ai_output is not structured", func(t *testing.T) {
		assert.NotEqual(t, CategoryStructured, Categorize(`{"user":"hi"}`))
	})

	t.Run("priority order is fixed", func(t *testing.T) {
		assert.Equal(t, []string{
			"customer_service", "coding", "business", "personal",
			"learning", "health", "finance",
		}, Categories())
	})

	t.Run("first matching table wins", func(t *testing.T) {
		// "work" sits in the customer_service table, which is checked before
		// personal even though the sentence reads as personal.
		assert.Equal(t, "customer_service", Categorize("I am a vegetarian and I work as a teacher"))
	})

	t.Run("prefix match at word boundary", func(t *testing.T) {
		// "pasta" matches the table entry "past" on its leading boundary.
		assert.Equal(t, "customer_service", Categorize("My favorite food is pasta"))
	})

	t.Run("personal", func(t *testing.T) {
		assert.Equal(t, "personal", Categorize("my wife and my kids went on vacation"))
	})

	t.Run("no match falls back to general", func(t *testing.T) {
		assert.Equal(t, CategoryGeneral, Categorize("asdf qwerty zxcv"))
	})
}

func TestSummarize(t *testing.T) {
	t.Run("short text passes through", func(t *testing.T) {
		text := "A short note."
		assert.Equal(t, text, Summarize(text))
	})

	t.Run("few sentences truncates to 150", func(t *testing.T) {
		text := strings.Repeat("x", 160)
		got := Summarize(text)
		assert.Equal(t, strings.Repeat("x", 150)+"...", got)
	})

	t.Run("joins first and last sentence", func(t *testing.T) {
		text := "The first sentence sets context. A middle sentence adds detail here. The last sentence concludes everything nicely."
		got := Summarize(text)
		assert.Equal(t, "The first sentence sets context... The last sentence concludes everything nicely", got)
	})

	t.Run("long join falls back to 200-char prefix", func(t *testing.T) {
		first := "This opening sentence is quite long and rambles on about many different things " + strings.Repeat("a", 60) + "."
		last := " This closing sentence is also long and rambles even further about details " + strings.Repeat("b", 60) + "."
		text := first + " Middle sentence adds nothing at all." + last
		got := Summarize(text)
		assert.True(t, strings.HasSuffix(got, "..."))
		assert.Len(t, []rune(got), 203)
	})
}

func TestIsWorthSaving(t *testing.T) {
	t.Run("too short", func(t *testing.T) {
		assert.False(t, IsWorthSaving("hi"))
	})

	t.Run("greeting rejected", func(t *testing.T) {
		assert.False(t, IsWorthSaving("how are you doing today my old friend"))
	})

	t.Run("boilerplate opener rejected", func(t *testing.T) {
		assert.False(t, IsWorthSaving("I'd be happy to help with that request"))
	})

	t.Run("value indicator accepted", func(t *testing.T) {
		assert.True(t, IsWorthSaving("Here is how to configure the database connection"))
	})

	t.Run("numbered list accepted", func(t *testing.T) {
		assert.True(t, IsWorthSaving("Follow these items closely please:\n1. unplug it\n2. plug it back"))
	})

	t.Run("long text accepted without indicators", func(t *testing.T) {
		assert.True(t, IsWorthSaving(strings.Repeat("zzz ", 60)))
	})
}

func TestExtractKeyFacts(t *testing.T) {
	t.Run("collects personal statements", func(t *testing.T) {
		text := "I work as a backend engineer in Berlin\nshort line\nI am allergic to peanuts and shellfish"
		facts := ExtractKeyFacts(text)
		assert.Contains(t, facts, "I work as a backend engineer in Berlin")
		assert.Contains(t, facts, "I am allergic to peanuts and shellfish")
	})

	t.Run("dedupes first seen", func(t *testing.T) {
		text := "I live in Amsterdam near the park\nI live in Amsterdam near the park"
		facts := ExtractKeyFacts(text)
		assert.Equal(t, []string{"I live in Amsterdam near the park"}, facts)
	})

	t.Run("ignores short matches and short lines", func(t *testing.T) {
		assert.Empty(t, ExtractKeyFacts("I like tea\nok"))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, ExtractKeyFacts(""))
	})
}
