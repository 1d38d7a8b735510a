package jumpball

const maxJumps = 2

// Player is the ball: kinematic state plus the jump state machine.
// Fields are unexported so jump charges can only be refilled through
// SetGrounded and hasLeftGround stays monotonic until Reset.
type Player struct {
	x, y, vy       float64
	rotation       float64 // Degrees, wrapped to [0, 360)
	jumpsRemaining int
	isJumping      bool
	grounded       bool
	hasLeftGround  bool
	jumpHoldTimer  float64
}

// Reset places the ball on the ground at its fixed horizontal position
// with full jump charges.
func (p *Player) Reset(tn *Tuning) {
	p.x = tn.PlayerX
	p.y = tn.GroundY
	p.vy = 0
	p.rotation = 0
	p.jumpsRemaining = maxJumps
	p.isJumping = false
	p.grounded = true
	p.hasLeftGround = false
	p.jumpHoldTimer = 0
}

// X returns the ball's fixed horizontal position.
func (p *Player) X() float64 { return p.x }

// Y returns the ball's vertical center position.
func (p *Player) Y() float64 { return p.y }

// VY returns the ball's vertical velocity (positive = down).
func (p *Player) VY() float64 { return p.vy }

// Rotation returns the rolling animation angle in degrees, in [0, 360).
func (p *Player) Rotation() float64 { return p.rotation }

// CanJump reports whether a jump charge remains.
func (p *Player) CanJump() bool {
	return p.jumpsRemaining > 0
}

// HasLeftGround reports whether the ball has jumped at least once since
// Reset. Ground contact becomes lethal once this is true.
func (p *Player) HasLeftGround() bool {
	return p.hasLeftGround
}

// StartJump begins a jump if a charge remains. The jump velocity overwrites
// the current vertical velocity, so a double jump fully resets upward speed
// rather than adding to it.
func (p *Player) StartJump(tn *Tuning) {
	if p.jumpsRemaining <= 0 {
		return
	}

	p.vy = tn.JumpVelocity
	p.isJumping = true
	p.grounded = false
	p.hasLeftGround = true
	p.jumpsRemaining--
	p.jumpHoldTimer = 0
}

// Update integrates the ball physics for one frame using explicit Euler.
// While the jump button is held during a jump, extra upward acceleration is
// applied until the hold timer reaches its cap, giving variable jump height
// limited by elapsed hold time rather than altitude.
func (p *Player) Update(dt float64, held bool, tn *Tuning) {
	p.vy += tn.Gravity * dt

	if held && p.isJumping && p.jumpHoldTimer < tn.MaxJumpHold {
		p.vy += tn.JumpHoldAccel * dt
		p.jumpHoldTimer += dt
	}

	p.y += p.vy * dt

	// Rolling animation runs at a fixed rate tied to the nominal scroll
	// speed, not the ball's actual velocity.
	p.rotation += tn.SpinRate * dt
	for p.rotation >= 360 {
		p.rotation -= 360
	}
}

// Settle snaps the ball onto a surface after landing resolution.
func (p *Player) Settle(y, vy float64) {
	p.y = y
	p.vy = vy
}

// SetGrounded updates the grounded state after each frame's landing
// resolution. Landing clears the jump flag and refills both jump charges;
// this is the only way charges are restored.
func (p *Player) SetGrounded(grounded bool) {
	p.grounded = grounded
	if grounded {
		p.isJumping = false
		p.jumpsRemaining = maxJumps
	}
}
