package render

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/futureletter/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const layout = "2006-01-02 15:04"

func ts(y int, m time.Month, d, h int) int64 {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC).UnixMilli()
}

func TestProject_SortsAndFormats(t *testing.T) {
	in := []models.Letter{
		{ID: "c", Title: "Later", RecipientEmail: "c@x", DeliveryTimestamp: ts(2031, 1, 1, 0)},
		{ID: "b", Title: "Tie B", RecipientEmail: "b@x", DeliveryTimestamp: ts(2030, 1, 1, 0)},
		{ID: "a", Title: "Tie A", RecipientEmail: "a@x", DeliveryTimestamp: ts(2030, 1, 1, 0)},
	}

	v := Project(in, time.UTC, layout)

	require.False(t, v.Empty)
	require.Len(t, v.Items, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{v.Items[0].ID, v.Items[1].ID, v.Items[2].ID})
	assert.Equal(t, 1, v.Items[0].Index)
	assert.Equal(t, 3, v.Items[2].Index)
	assert.Equal(t, "2030-01-01 00:00", v.Items[0].DeliveryAt)
	assert.Equal(t, "a@x", v.Items[0].Recipient)

	// input untouched
	assert.Equal(t, "c", in[0].ID)
}

func TestProject_UsesLocation(t *testing.T) {
	in := []models.Letter{{ID: "a", DeliveryTimestamp: ts(2030, 1, 1, 0)}}

	v := Project(in, time.FixedZone("WIB", 7*3600), layout)
	assert.Equal(t, "2030-01-01 07:00", v.Items[0].DeliveryAt)
}

func TestProject_Empty(t *testing.T) {
	v := Project(nil, time.UTC, layout)
	assert.True(t, v.Empty)
	assert.Empty(t, v.Items)
}

func TestView_Lookup(t *testing.T) {
	v := Project([]models.Letter{{ID: "a"}, {ID: "b", DeliveryTimestamp: 1}}, time.UTC, layout)

	it, ok := v.Lookup(2, "")
	require.True(t, ok)
	assert.Equal(t, "b", it.ID)

	it, ok = v.Lookup(0, "a")
	require.True(t, ok)
	assert.Equal(t, 1, it.Index)

	_, ok = v.Lookup(5, "")
	assert.False(t, ok)
	_, ok = v.Lookup(0, "zzz")
	assert.False(t, ok)
}

func TestTerminal_RenderIsDeterministic(t *testing.T) {
	v := Project([]models.Letter{
		{ID: "a", Title: "Hello", RecipientEmail: "me@example.com", DeliveryTimestamp: ts(2030, 5, 1, 9)},
	}, time.UTC, layout)

	var b1, b2 bytes.Buffer
	NewTerminal(&b1, 60).Render(v)
	NewTerminal(&b2, 60).Render(v)

	assert.Equal(t, b1.String(), b2.String())
	assert.Contains(t, b1.String(), "Pending letters (1)")
	assert.Contains(t, b1.String(), " 1. Hello")
	assert.Contains(t, b1.String(), "to me@example.com on 2030-05-01 09:00")
}

func TestTerminal_RenderEmpty(t *testing.T) {
	var b bytes.Buffer
	NewTerminal(&b, 0).Render(Project(nil, time.UTC, layout))

	assert.Contains(t, b.String(), "Pending letters (0)")
	assert.Contains(t, b.String(), "No letters scheduled yet.")
}

func TestTerminal_NoticeAndStatus(t *testing.T) {
	var b bytes.Buffer
	term := NewTerminal(&b, 40)

	term.Notice("Locked!", "see you later")
	term.Notice("Error", "try again")
	term.Status("connected as abcd1234")
	term.Println("plain")

	out := b.String()
	assert.Contains(t, out, "Locked!\nsee you later")
	assert.Contains(t, out, "Error\ntry again")
	assert.Contains(t, out, "[connected as abcd1234]")
	assert.True(t, strings.HasSuffix(out, "plain\n"))
}

func TestTerminal_ConcurrentWrites(t *testing.T) {
	var b bytes.Buffer
	term := NewTerminal(&b, 40)
	v := Project([]models.Letter{{ID: "a", Title: "x"}}, time.UTC, layout)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			term.Render(v)
			term.Status("s")
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, strings.Count(b.String(), "Pending letters (1)"))
}

func TestWidth_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "w")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, DefaultWidth, Width(f))
}
