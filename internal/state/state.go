package state

import "github.com/hajimehoshi/ebiten/v2"

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine holds a stack of states; only the top one is updated and drawn.
// Overlays such as pause are pushed on top so the state beneath keeps its
// data without an Exit/Enter round trip.
type StateMachine struct {
	stack []State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState replaces the top state.
func (sm *StateMachine) SetState(newState State) {
	if top := sm.Current(); top != nil {
		top.Exit()
		sm.stack = sm.stack[:len(sm.stack)-1]
	}
	sm.Push(newState)
}

// Push enters newState on top of the current one.
func (sm *StateMachine) Push(newState State) {
	if newState == nil {
		return
	}
	sm.stack = append(sm.stack, newState)
	newState.Enter()
}

// Pop exits the top state and resumes the one below it.
func (sm *StateMachine) Pop() {
	top := sm.Current()
	if top == nil {
		return
	}
	top.Exit()
	sm.stack = sm.stack[:len(sm.stack)-1]
}

// Current returns the top state, or nil.
func (sm *StateMachine) Current() State {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if top := sm.Current(); top != nil {
		top.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if top := sm.Current(); top != nil {
		top.Draw(screen)
	}
}
