package breakout

import "fmt"

// Scoreboard keeps score and lives and the HUD text derived from them.
type Scoreboard struct {
	score int
	lives int

	scoreText string
	livesText string
}

// NewScoreboard starts at zero points with the given number of lives.
func NewScoreboard(lives int) *Scoreboard {
	s := &Scoreboard{lives: max(lives, 0)}
	s.render()
	return s
}

// AddScore adds points. Negative values are ignored.
func (s *Scoreboard) AddScore(points int) {
	if points <= 0 {
		return
	}
	s.score += points
	s.render()
}

// LoseLife removes one life, never going below zero, and returns what is left.
func (s *Scoreboard) LoseLife() int {
	if s.lives > 0 {
		s.lives--
	}
	s.render()
	return s.lives
}

// Score returns the current score.
func (s *Scoreboard) Score() int {
	return s.score
}

// Lives returns the remaining lives.
func (s *Scoreboard) Lives() int {
	return s.lives
}

// ScoreText returns the score label.
func (s *Scoreboard) ScoreText() string {
	return s.scoreText
}

// LivesText returns the lives label.
func (s *Scoreboard) LivesText() string {
	return s.livesText
}

func (s *Scoreboard) render() {
	s.scoreText = fmt.Sprintf("Points: %d", s.score)
	s.livesText = fmt.Sprintf("Lives: %d", s.lives)
}
