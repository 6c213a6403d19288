package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tunesearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/tunesearch/internal/core/domain"
)

func TestPresenter_SignalsBecomeMessages(t *testing.T) {
	p := NewPresenter(0)

	rows := []domain.ResultItem{{TrackName: "Waterloo"}}
	p.OnLoadingChanged(true)
	p.OnErrorCleared()
	p.OnResultsInfoCleared()
	p.OnRowsChanged(rows)
	p.OnResultsInfo("abba", 1)
	p.OnError(domain.MessageNoResults)
	p.OnLoadingChanged(false)

	listen := p.Listen()
	assert.Equal(t, messages.LoadingChanged{IsLoading: true}, listen())
	assert.Equal(t, messages.ErrorCleared{}, listen())
	assert.Equal(t, messages.ResultsInfoCleared{}, listen())
	assert.Equal(t, messages.RowsChanged{Rows: rows}, listen())
	assert.Equal(t, messages.ResultsInfoShown{Term: "abba", Count: 1}, listen())
	assert.Equal(t, messages.ErrorShown{Message: domain.MessageNoResults}, listen())
	assert.Equal(t, messages.LoadingChanged{IsLoading: false}, listen())
	assert.Zero(t, p.Pending())
}

func TestPresenter_RowsAreCopied(t *testing.T) {
	p := NewPresenter(4)
	rows := []domain.ResultItem{{TrackName: "Waterloo"}}

	p.OnRowsChanged(rows)
	rows[0].TrackName = "mutated"

	msg, ok := p.Listen()().(messages.RowsChanged)
	require.True(t, ok)
	assert.Equal(t, "Waterloo", msg.Rows[0].TrackName)
}

func TestPresenter_DropsWhenFull(t *testing.T) {
	p := NewPresenter(2)

	p.OnLoadingChanged(true)
	p.OnErrorCleared()
	p.OnResultsInfoCleared() // dropped, must not block

	assert.Equal(t, 2, p.Pending())
}

func TestPresenter_Send(t *testing.T) {
	p := NewPresenter(1)

	p.Send(messages.ThemeChanged{Theme: domain.ThemeDark})

	assert.Equal(t, messages.ThemeChanged{Theme: domain.ThemeDark}, p.Listen()())
}
