package pong

import (
	"log/slog"

	"pong/internal/geom"
)

const (
	WindowWidth  float32 = 640.0
	WindowHeight float32 = 480.0
	PaddleSpeed  float32 = 8.0
	BallSpeed    float32 = 5.0
	PaddleSpin   float32 = 4.0
	BallAcc      float32 = 0.05
	PaddleInset  float32 = 16.0
)

// NewGameState lays out the paddles and ball for the start of a round.
// Paddles sit PaddleInset away from their edge, centered vertically, and the
// ball starts in the middle of the window heading left.
func NewGameState(paddleOne, paddleTwo, ball Visual) *GameState {
	p1Pos := geom.Vector{
		X: PaddleInset,
		Y: (WindowHeight - paddleOne.Height()) / 2,
	}
	p2Pos := geom.Vector{
		X: WindowWidth - PaddleInset - paddleTwo.Width(),
		Y: (WindowHeight - paddleTwo.Height()) / 2,
	}
	ballPos := geom.Vector{
		X: (WindowWidth - ball.Width()) / 2,
		Y: (WindowHeight - ball.Height()) / 2,
	}

	return &GameState{
		PlayerOne: NewEntity(paddleOne, p1Pos),
		PlayerTwo: NewEntity(paddleTwo, p2Pos),
		Ball:      NewEntityWithVelocity(ball, ballPos, geom.Vector{X: -BallSpeed, Y: 0}),
		Phase:     Playing,
		log:       slog.Default(),
	}
}

func (s *GameState) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	s.log = l
}

func (s *GameState) logger() *slog.Logger {
	if s.log == nil {
		return slog.Default()
	}
	return s.log
}

// Update advances the game by one tick. Once a winner has been found the
// state is frozen and further calls report the same winner with Ended unset.
func (s *GameState) Update(kb Keyboard) Outcome {
	if s.Phase == Terminated {
		return Outcome{Winner: s.Winner}
	}

	// Player one controls
	if kb.IsKeyDown(KeyW) {
		s.PlayerOne.Position.Y -= PaddleSpeed
	}
	if kb.IsKeyDown(KeyS) {
		s.PlayerOne.Position.Y += PaddleSpeed
	}

	// Player two controls
	if kb.IsKeyDown(KeyI) {
		s.PlayerTwo.Position.Y -= PaddleSpeed
	}
	if kb.IsKeyDown(KeyK) {
		s.PlayerTwo.Position.Y += PaddleSpeed
	}

	s.Ball.Update()

	if paddle, who := s.paddleHit(); paddle != nil {
		s.bounceOffPaddle(paddle)
		s.logger().Debug("paddle hit",
			slog.Any("paddle", who),
			slog.Any("velocity", s.Ball.Velocity))
	}

	if s.Ball.Position.Y <= 0 || s.Ball.Position.Y+s.Ball.Height() >= WindowHeight {
		s.Ball.Velocity.Y = -s.Ball.Velocity.Y
		s.logger().Debug("wall bounce", slog.Any("position", s.Ball.Position))
	}

	winner := NoPlayer
	if s.Ball.Position.X < 0 {
		winner = PlayerTwo
	} else if s.Ball.Position.X > WindowWidth {
		winner = PlayerOne
	}
	if winner == NoPlayer {
		return Outcome{}
	}

	s.Phase = Terminated
	s.Winner = winner
	s.logger().Debug("round over", slog.Any("winner", winner))
	return Outcome{Winner: winner, Ended: true}
}

// paddleHit returns the paddle the ball overlaps, if any. Paddle one is
// checked first and wins when the ball overlaps both.
func (s *GameState) paddleHit() (*Entity, Player) {
	ballBounds := s.Ball.Bounds()
	if ballBounds.Intersects(s.PlayerOne.Bounds()) {
		return &s.PlayerOne, PlayerOne
	}
	if ballBounds.Intersects(s.PlayerTwo.Bounds()) {
		return &s.PlayerTwo, PlayerTwo
	}
	return nil, NoPlayer
}

func (s *GameState) bounceOffPaddle(paddle *Entity) {
	vx := s.Ball.Velocity.X
	s.Ball.Velocity.X = -(vx + BallAcc*geom.Signum(vx))

	offset := (paddle.Center().Y - s.Ball.Center().Y) / paddle.Height()
	s.Ball.Velocity.Y += PaddleSpin * -offset
}

// Draw paints the background and then both paddles and the ball, in that order.
func (s *GameState) Draw(c Canvas) {
	c.Clear(Background)
	c.DrawVisual(s.PlayerOne.Visual, s.PlayerOne.Position)
	c.DrawVisual(s.PlayerTwo.Visual, s.PlayerTwo.Position)
	c.DrawVisual(s.Ball.Visual, s.Ball.Position)
}
