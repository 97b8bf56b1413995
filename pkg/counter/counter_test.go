package counter

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tickRecorder acumula os valores emitidos de forma segura para concorrência.
type tickRecorder struct {
	mu     sync.Mutex
	values []float64
}

func (r *tickRecorder) record(v float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *tickRecorder) snapshot() []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float64, len(r.values))
	copy(out, r.values)
	return out
}

func TestTransition_AssentaExatamenteNoAlvo(t *testing.T) {
	rec := &tickRecorder{}
	tr := New(200*time.Millisecond, WithSteps(10), WithOnTick(rec.record))
	defer tr.Stop()

	tr.Set(100)

	require.Eventually(t, func() bool {
		values := rec.snapshot()
		return len(values) > 0 && values[len(values)-1] == 100
	}, 2*time.Second, 10*time.Millisecond)

	values := rec.snapshot()

	// O último valor emitido é exatamente o alvo, sem ultrapassagem
	assert.Equal(t, 100.0, values[len(values)-1])
	for _, v := range values {
		assert.LessOrEqual(t, v, 100.0)
	}
}

func TestTransition_ReinicioNoMeioDoVoo(t *testing.T) {
	rec := &tickRecorder{}
	tr := New(400*time.Millisecond, WithSteps(20), WithOnTick(rec.record))
	defer tr.Stop()

	tr.Set(1000)

	// Espera alguns ticks da interpolação original
	require.Eventually(t, func() bool {
		return tr.Value() > 0
	}, 2*time.Second, 5*time.Millisecond)

	ticksBefore := len(rec.snapshot())
	tr.Set(10)

	require.Eventually(t, func() bool {
		values := rec.snapshot()
		return len(values) > 0 && values[len(values)-1] == 10
	}, 2*time.Second, 10*time.Millisecond)

	// Depois do reinício a interpolação antiga está cancelada: a sequência
	// desce do valor confirmado até o novo alvo e, uma vez que começou a
	// descer, nunca volta a subir em direção ao alvo antigo
	tail := rec.snapshot()[ticksBefore:]
	require.NotEmpty(t, tail)

	descending := false
	for i := 1; i < len(tail); i++ {
		if tail[i] < tail[i-1] {
			descending = true
		} else if descending {
			assert.LessOrEqual(t, tail[i], tail[i-1], "a sequência voltou a subir depois do reinício")
		}
	}

	assert.Equal(t, 10.0, tail[len(tail)-1])
	assert.Equal(t, 10.0, tr.Value())
}

func TestTransition_StopAntesDoAtrasoNaoAplicaNada(t *testing.T) {
	rec := &tickRecorder{}
	tr := New(100*time.Millisecond, WithSteps(5), WithDelay(300*time.Millisecond), WithOnTick(rec.record))

	tr.Set(50)
	time.Sleep(50 * time.Millisecond)
	tr.Stop()

	// Espera o suficiente para o atraso original ter expirado
	time.Sleep(500 * time.Millisecond)

	assert.Equal(t, 0.0, tr.Value())
	assert.Empty(t, rec.snapshot())
}

func TestTransition_SetDepoisDeStopEIgnorado(t *testing.T) {
	tr := New(50 * time.Millisecond)
	tr.Stop()

	tr.Set(42)
	time.Sleep(150 * time.Millisecond)

	assert.Equal(t, 0.0, tr.Value())
}
