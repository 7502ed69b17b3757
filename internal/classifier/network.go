// Package classifier implements a small feed-forward binary classifier
// trained by gradient descent on binary cross-entropy. It is used to score
// goal-statement embeddings against the reference corpus; nothing in this
// package knows about embeddings or goals, it only sees vectors and labels.
package classifier

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Config holds the network shape and training hyperparameters. Training is
// deterministic for a fixed Seed and sample order, but the resulting scores
// are approximations, not bit-reproducible contracts.
type Config struct {
	Hidden1      int
	Hidden2      int
	LearningRate float64
	Epochs       int
	Seed         int64
}

// DefaultConfig returns the hyperparameters used for the goal classifier.
func DefaultConfig() Config {
	return Config{
		Hidden1:      16,
		Hidden2:      8,
		LearningRate: 0.05,
		Epochs:       300,
		Seed:         1,
	}
}

// Network is a trained input->hidden->hidden->1 classifier with a sigmoid
// output. Parameters are written only by Train and are read-only afterward,
// so a trained Network is safe for concurrent Predict calls.
type Network struct {
	inputDim int

	w1 [][]float64
	b1 []float64
	w2 [][]float64
	b2 []float64
	w3 []float64
	b3 float64
}

// InputDim returns the embedding dimension the network was trained on.
func (n *Network) InputDim() int {
	return n.inputDim
}

// Train fits a new network on the given samples. Labels must be 0 or 1 and
// aligned with samples; every sample must share the same dimension.
func Train(samples [][]float64, labels []float64, cfg Config) (*Network, error) {
	if len(samples) == 0 {
		return nil, errors.New("no training samples")
	}
	if len(samples) != len(labels) {
		return nil, fmt.Errorf("got %d samples but %d labels", len(samples), len(labels))
	}

	dim := len(samples[0])
	if dim == 0 {
		return nil, errors.New("zero-dimension training samples")
	}
	for i, s := range samples {
		if len(s) != dim {
			return nil, fmt.Errorf("sample %d has dimension %d, want %d", i, len(s), dim)
		}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	n := &Network{
		inputDim: dim,
		w1:       initLayer(rng, cfg.Hidden1, dim),
		b1:       make([]float64, cfg.Hidden1),
		w2:       initLayer(rng, cfg.Hidden2, cfg.Hidden1),
		b2:       make([]float64, cfg.Hidden2),
		w3:       initLayer(rng, 1, cfg.Hidden2)[0],
	}

	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		n.trainEpoch(samples, labels, cfg.LearningRate)
	}

	return n, nil
}

// Predict runs a forward pass and returns the probability of the positive
// class in [0,1].
func (n *Network) Predict(x []float64) (float64, error) {
	if len(x) != n.inputDim {
		return 0, fmt.Errorf("input has dimension %d, want %d", len(x), n.inputDim)
	}
	_, _, p := n.forward(x)
	return p, nil
}

// forward returns both hidden activations and the output probability; the
// activations are needed again during backpropagation.
func (n *Network) forward(x []float64) ([]float64, []float64, float64) {
	a1 := make([]float64, len(n.w1))
	for j, row := range n.w1 {
		a1[j] = relu(dot(row, x) + n.b1[j])
	}

	a2 := make([]float64, len(n.w2))
	for j, row := range n.w2 {
		a2[j] = relu(dot(row, a1) + n.b2[j])
	}

	p := sigmoid(dot(n.w3, a2) + n.b3)
	return a1, a2, p
}

// trainEpoch performs one full-batch gradient descent step minimizing binary
// cross-entropy. Gradients are averaged over all samples before the update.
func (n *Network) trainEpoch(samples [][]float64, labels []float64, lr float64) {
	h1 := len(n.w1)
	h2 := len(n.w2)
	dim := n.inputDim

	gw1 := zeros(h1, dim)
	gb1 := make([]float64, h1)
	gw2 := zeros(h2, h1)
	gb2 := make([]float64, h2)
	gw3 := make([]float64, h2)
	var gb3 float64

	for i, x := range samples {
		a1, a2, p := n.forward(x)

		// With a sigmoid output and cross-entropy loss the output-layer
		// delta collapses to (p - y).
		d3 := p - labels[i]

		d2 := make([]float64, h2)
		for j := range n.w2 {
			if a2[j] <= 0 {
				continue
			}
			d2[j] = d3 * n.w3[j]
		}

		d1 := make([]float64, h1)
		for j := range n.w1 {
			if a1[j] <= 0 {
				continue
			}
			var sum float64
			for k := range n.w2 {
				sum += d2[k] * n.w2[k][j]
			}
			d1[j] = sum
		}

		for j := range gw3 {
			gw3[j] += d3 * a2[j]
		}
		gb3 += d3
		for j := range gw2 {
			for k := range gw2[j] {
				gw2[j][k] += d2[j] * a1[k]
			}
			gb2[j] += d2[j]
		}
		for j := range gw1 {
			for k := range gw1[j] {
				gw1[j][k] += d1[j] * x[k]
			}
			gb1[j] += d1[j]
		}
	}

	scale := lr / float64(len(samples))
	for j := range n.w3 {
		n.w3[j] -= scale * gw3[j]
	}
	n.b3 -= scale * gb3
	for j := range n.w2 {
		for k := range n.w2[j] {
			n.w2[j][k] -= scale * gw2[j][k]
		}
		n.b2[j] -= scale * gb2[j]
	}
	for j := range n.w1 {
		for k := range n.w1[j] {
			n.w1[j][k] -= scale * gw1[j][k]
		}
		n.b1[j] -= scale * gb1[j]
	}
}

// initLayer draws He-scaled gaussian weights for a rows x cols layer.
func initLayer(rng *rand.Rand, rows, cols int) [][]float64 {
	scale := math.Sqrt(2.0 / float64(cols))
	w := make([][]float64, rows)
	for j := range w {
		w[j] = make([]float64, cols)
		for k := range w[j] {
			w[j][k] = rng.NormFloat64() * scale
		}
	}
	return w
}

func zeros(rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for j := range m {
		m[j] = make([]float64, cols)
	}
	return m
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func relu(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
