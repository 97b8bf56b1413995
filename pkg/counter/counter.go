// Package counter implementa a transição numérica suave usada pelos KPIs do
// dashboard: o valor exibido converge linearmente do último valor confirmado
// até o alvo, em passos de duração fixa, terminando exatamente no alvo.
package counter

import (
	"sync"
	"time"
)

const defaultSteps = 50

// Option configura uma Transition.
type Option func(*Transition)

// WithSteps altera a quantidade de passos da interpolação.
func WithSteps(steps int) Option {
	return func(t *Transition) {
		if steps > 0 {
			t.steps = steps
		}
	}
}

// WithDelay atrasa o início da interpolação. O timer do atraso é cancelável:
// um Stop ou um novo Set antes do atraso expirar não aplica nenhuma
// atualização.
func WithDelay(delay time.Duration) Option {
	return func(t *Transition) {
		t.delay = delay
	}
}

// WithOnTick registra um callback chamado a cada valor emitido, inclusive o
// valor final. O callback é invocado fora do lock interno.
func WithOnTick(fn func(value float64)) Option {
	return func(t *Transition) {
		t.onTick = fn
	}
}

// Transition anima um único valor exibido. Apenas uma interpolação fica em
// voo por vez: Set cancela o ticker anterior antes de iniciar o próximo, de
// forma que nunca existem dois escritores concorrentes do mesmo valor.
type Transition struct {
	duration time.Duration
	steps    int
	delay    time.Duration
	onTick   func(float64)

	mu      sync.Mutex
	value   float64 // último valor confirmado
	target  float64
	gen     uint64 // geração da interpolação em voo; invalida tickers antigos
	done    chan struct{}
	stopped bool
}

// New cria uma Transition parada em zero.
func New(duration time.Duration, opts ...Option) *Transition {
	t := &Transition{
		duration: duration,
		steps:    defaultSteps,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Value retorna o último valor confirmado.
func (t *Transition) Value() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.value
}

// Target retorna o alvo atual.
func (t *Transition) Target() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.target
}

// Set redefine o alvo e reinicia a interpolação a partir do último valor
// confirmado, não do zero. Uma interpolação em voo é cancelada antes da
// nova começar.
func (t *Transition) Set(target float64) {
	t.mu.Lock()

	if t.stopped {
		t.mu.Unlock()
		return
	}

	t.cancelLocked()
	t.target = target
	t.gen++

	gen := t.gen
	done := make(chan struct{})
	t.done = done
	start := t.value

	t.mu.Unlock()

	go t.run(gen, done, start, target)
}

// Stop encerra a Transition em definitivo: cancela o atraso e o ticker em
// voo. Nenhuma atualização é aplicada depois do Stop.
func (t *Transition) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cancelLocked()
	t.stopped = true
}

func (t *Transition) cancelLocked() {
	if t.done != nil {
		close(t.done)
		t.done = nil
	}
}

func (t *Transition) run(gen uint64, done chan struct{}, start, target float64) {
	if t.delay > 0 {
		timer := time.NewTimer(t.delay)
		select {
		case <-timer.C:
		case <-done:
			timer.Stop()
			return
		}
	}

	interval := t.duration / time.Duration(t.steps)
	if interval <= 0 {
		interval = time.Millisecond
	}

	increment := (target - start) / float64(t.steps)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for step := 1; ; step++ {
		select {
		case <-done:
			return
		case <-ticker.C:
		}

		final := step >= t.steps

		t.mu.Lock()
		if t.stopped || gen != t.gen {
			t.mu.Unlock()
			return
		}

		if final {
			// O último passo assenta exatamente no alvo, sem resíduo de
			// ponto flutuante
			t.value = target
		} else {
			t.value = start + increment*float64(step)
		}
		emitted := t.value
		t.mu.Unlock()

		if t.onTick != nil {
			t.onTick(emitted)
		}

		if final {
			return
		}
	}
}
