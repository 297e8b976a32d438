package tui

import (
	"github.com/githubnext/calmhn/internal/story"
)

type storiesLoadedMsg struct {
	stories []story.Story
}

type fetchErrMsg struct {
	err error
}

type openErrMsg struct {
	err error
}
