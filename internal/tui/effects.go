package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/portfolio/internal/api"
	"github.com/ensigniasec/portfolio/internal/portfolio"
)

// runEffect turns a reducer effect into a command.
func (m *Model) runEffect(e portfolio.Effect) tea.Cmd {
	switch fx := e.(type) {
	case portfolio.ScrollEffect:
		logrus.WithFields(logrus.Fields{"offset_y": fx.OffsetY, "duration": fx.Duration}).Debug("scroll")
		return m.startScroll(fx)
	case portfolio.SubmitEffect:
		logrus.WithField("endpoint", m.content.Endpoint).Debug("submit contact form")
		return m.submitCmd(fx.Payload)
	case portfolio.OpenURLEffect:
		logrus.WithField("url", fx.URL).Debug("open url")
		return openCmd(m.openURL, fx.URL)
	}
	return nil
}

// startScroll begins an eased animation to the effect's offset, superseding any running one.
func (m *Model) startScroll(fx portfolio.ScrollEffect) tea.Cmd {
	m.anim = scrollAnim{
		id:       m.anim.id + 1,
		from:     m.viewport.YOffset,
		to:       m.rnd.rows(fx.OffsetY),
		began:    m.now(),
		duration: fx.Duration,
		easing:   fx.Easing,
		running:  true,
	}
	if fx.Duration <= 0 {
		m.viewport.SetYOffset(m.anim.to)
		m.anim.running = false
		return nil
	}
	return scrollFrame(m.anim.id)
}

func (m *Model) cancelScroll() {
	m.anim.id++
	m.anim.running = false
}

// stepScroll applies one animation frame. It returns false once the animation is over.
func (m *Model) stepScroll(msg scrollFrameMsg) bool {
	if !m.anim.running || msg.id != m.anim.id {
		return false
	}
	t := float64(msg.at.Sub(m.anim.began)) / float64(m.anim.duration)
	y := float64(m.anim.from) + float64(m.anim.to-m.anim.from)*m.anim.easing.At(t)
	m.viewport.SetYOffset(int(y + 0.5))
	if t >= 1 {
		m.viewport.SetYOffset(m.anim.to)
		m.anim.running = false
		return false
	}
	return true
}

func scrollFrame(id int) tea.Cmd {
	return tea.Tick(scrollFrameInterval, func(t time.Time) tea.Msg {
		return scrollFrameMsg{id: id, at: t}
	})
}

// submitCmd posts the payload once. The outcome only reaches the log and the reducer.
func (m *Model) submitCmd(p portfolio.ContactForm) tea.Cmd {
	sub, parent, timeout := m.submitter, m.ctx, m.timeout
	return func() tea.Msg {
		if sub == nil {
			return submissionDoneMsg{err: ErrNoSubmitter}
		}
		if parent == nil {
			parent = context.Background()
		}
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()
		err := sub.SubmitContact(ctx, api.ContactRequest{
			FirstName:    p.FirstName,
			LastName:     p.LastName,
			EmailAddress: p.EmailAddress,
			EmailMessage: p.EmailMessage,
		})
		if err != nil {
			err = fmt.Errorf("submit contact: %w", err)
		}
		return submissionDoneMsg{err: err}
	}
}

func openCmd(open func(string) error, url string) tea.Cmd {
	return func() tea.Msg {
		if err := open(url); err != nil {
			logrus.WithError(err).WithField("url", url).Debug("open url failed")
			return statusMsg{text: "could not open " + url}
		}
		return nil
	}
}
