// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State: интерфейс для всех состояний. deltaTime в секундах.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine: стек состояний. Обновляется только верхнее, рисуются все
// снизу вверх, так что оверлей (пауза) видит замороженную игру под собой.
type StateMachine struct {
	stack []State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState снимает весь стек и делает newState единственным состоянием.
func (sm *StateMachine) SetState(newState State) {
	for len(sm.stack) > 0 {
		sm.Pop()
	}
	if newState != nil {
		sm.Push(newState)
	}
}

// Push кладёт оверлей поверх текущего состояния; нижнее не получает Exit.
func (sm *StateMachine) Push(s State) {
	sm.stack = append(sm.stack, s)
	s.Enter()
}

// Pop снимает верхнее состояние и возвращает управление предыдущему.
func (sm *StateMachine) Pop() {
	n := len(sm.stack)
	if n == 0 {
		return
	}
	top := sm.stack[n-1]
	sm.stack[n-1] = nil
	sm.stack = sm.stack[:n-1]
	top.Exit()
}

// Current returns the top state, nil when the stack is empty.
func (sm *StateMachine) Current() State {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

// Update обновляет верхнее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if s := sm.Current(); s != nil {
		s.Update(deltaTime)
	}
}

// Draw отрисовывает стек снизу вверх
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	for _, s := range sm.stack {
		s.Draw(screen)
	}
}
