package main

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/fmath"
)

const sampleCount = 10000

// Test data shared by the accuracy tables and the timing loops. The
// mgl copies hold the same draws so every library multiplies the same
// numbers.
var (
	testAngles []float64
	testPos    []float64

	testQuats   []fmath.Quaternion
	testQuats32 []mgl32.Quat

	testMats   []fmath.Matrix
	testMats32 []mgl32.Mat4
	testMats64 []mgl64.Mat4
)

var (
	benchVec   = fmath.Vec3{X: 1, Y: 2, Z: -0.5}
	benchVec32 = mgl32.Vec3{1, 2, -0.5}
)

func init() {
	rng := fmath.NewRandSeeded(42)

	testAngles = make([]float64, sampleCount)
	testPos = make([]float64, sampleCount)
	for i := 0; i < sampleCount; i++ {
		testAngles[i] = rng.Float64()*fmath.TwoPi - fmath.Pi
		testPos[i] = 1 + rng.Float64()*999
	}

	testQuats = make([]fmath.Quaternion, sampleCount)
	testQuats32 = make([]mgl32.Quat, sampleCount)
	for i := 0; i < sampleCount; i++ {
		q := fmath.QNormalize(fmath.Quaternion{
			X: rng.Float32()*2 - 1,
			Y: rng.Float32()*2 - 1,
			Z: rng.Float32()*2 - 1,
			W: rng.Float32()*2 - 1,
		})
		testQuats[i] = q
		testQuats32[i] = mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
	}

	testMats = make([]fmath.Matrix, sampleCount)
	testMats32 = make([]mgl32.Mat4, sampleCount)
	testMats64 = make([]mgl64.Mat4, sampleCount)
	for i := 0; i < sampleCount; i++ {
		m := fmath.NewMatrix(4)
		var m32 mgl32.Mat4
		var m64 mgl64.Mat4
		for j := 0; j < 16; j++ {
			v := rng.Float32()*2 - 1
			m.Set(j/4, j%4, v)
			m32[j] = v
			m64[j] = float64(v)
		}
		testMats[i] = m
		testMats32[i] = m32
		testMats64[i] = m64
	}
}

// === BENCHMARKS ===

func BenchmarkSin(b *testing.B) {
	var sink float64
	for i := 0; i < b.N; i++ {
		sink = fmath.Sin(testAngles[i%sampleCount])
	}
	_ = sink
}

func BenchmarkMathSin(b *testing.B) {
	var sink float64
	for i := 0; i < b.N; i++ {
		sink = math.Sin(testAngles[i%sampleCount])
	}
	_ = sink
}

func BenchmarkInvSqrt(b *testing.B) {
	var sink float64
	for i := 0; i < b.N; i++ {
		sink = fmath.InvSqrt(testPos[i%sampleCount])
	}
	_ = sink
}

func BenchmarkMathInvSqrt(b *testing.B) {
	var sink float64
	for i := 0; i < b.N; i++ {
		sink = 1 / math.Sqrt(testPos[i%sampleCount])
	}
	_ = sink
}

func BenchmarkQMul(b *testing.B) {
	var sink fmath.Quaternion
	for i := 0; i < b.N; i++ {
		sink = fmath.QMul(testQuats[i%sampleCount], testQuats[(i+1)%sampleCount])
	}
	_ = sink
}

func BenchmarkMglQuatMul(b *testing.B) {
	var sink mgl32.Quat
	for i := 0; i < b.N; i++ {
		sink = testQuats32[i%sampleCount].Mul(testQuats32[(i+1)%sampleCount])
	}
	_ = sink
}

func BenchmarkV3TransformQuat(b *testing.B) {
	var sink fmath.Vec3
	for i := 0; i < b.N; i++ {
		sink = fmath.V3TransformQuat(benchVec, testQuats[i%sampleCount])
	}
	_ = sink
}

func BenchmarkMglQuatRotate(b *testing.B) {
	var sink mgl32.Vec3
	for i := 0; i < b.N; i++ {
		sink = testQuats32[i%sampleCount].Rotate(benchVec32)
	}
	_ = sink
}

func BenchmarkMMul(b *testing.B) {
	var sink fmath.Matrix
	for i := 0; i < b.N; i++ {
		sink, _ = fmath.MMul(testMats[i%sampleCount], testMats[(i+1)%sampleCount])
	}
	_ = sink
}

func BenchmarkMglMat4Mul(b *testing.B) {
	var sink mgl32.Mat4
	for i := 0; i < b.N; i++ {
		sink = testMats32[i%sampleCount].Mul4(testMats32[(i+1)%sampleCount])
	}
	_ = sink
}

func BenchmarkMgl64Mat4Mul(b *testing.B) {
	var sink mgl64.Mat4
	for i := 0; i < b.N; i++ {
		sink = testMats64[i%sampleCount].Mul4(testMats64[(i+1)%sampleCount])
	}
	_ = sink
}

// === ACCURACY VERIFICATION ===

func quatDelta(a fmath.Quaternion, b mgl32.Quat) float64 {
	d := math.Abs(float64(a.X - b.V[0]))
	d = math.Max(d, math.Abs(float64(a.Y-b.V[1])))
	d = math.Max(d, math.Abs(float64(a.Z-b.V[2])))
	d = math.Max(d, math.Abs(float64(a.W-b.W)))
	return d
}

func vecDelta(a fmath.Vec3, b mgl32.Vec3) float64 {
	d := math.Abs(float64(a.X - b[0]))
	d = math.Max(d, math.Abs(float64(a.Y-b[1])))
	d = math.Max(d, math.Abs(float64(a.Z-b[2])))
	return d
}

func verifyAccuracy() {
	fmt.Println("=== fmath.Sin vs math.Sin ===")
	fmt.Println()
	fmt.Printf("%10s %12s %12s %12s\n", "Angle", "fmath.Sin", "math.Sin", "AbsErr")

	angleCases := []float64{-3.0, -2.0, -1.0, -0.5, 0, 0.5, 1.0, fmath.HalfPi, 2.0, 3.0}
	for _, a := range angleCases {
		got := fmath.Sin(a)
		want := math.Sin(a)
		fmt.Printf("%10.4f %12.6f %12.6f %12.6f\n", a, got, want, math.Abs(got-want))
	}

	fmt.Println()
	fmt.Println("=== fmath.InvSqrt vs 1/math.Sqrt ===")
	fmt.Println()
	fmt.Printf("%10s %15s %15s %10s\n", "Input", "fmath.InvSqrt", "1/math.Sqrt", "Error %")

	invCases := []float64{1, 2, 4, 10, 100, 10000, 1e6}
	for _, x := range invCases {
		got := fmath.InvSqrt(x)
		want := 1 / math.Sqrt(x)
		fmt.Printf("%10.0f %15.9f %15.9f %9.4f%%\n", x, got, want, math.Abs(got-want)/want*100)
	}

	fmt.Println()
	fmt.Println("=== fmath.QMul vs mgl32.Quat.Mul (max component delta) ===")
	fmt.Println()

	maxMul := 0.0
	for i := 0; i+1 < 1000; i++ {
		p := fmath.QMul(testQuats[i], testQuats[i+1])
		pm := testQuats32[i].Mul(testQuats32[i+1])
		maxMul = math.Max(maxMul, quatDelta(p, pm))
	}
	fmt.Printf("1000 random unit quaternion products: max delta %.2e\n", maxMul)

	fmt.Println()
	fmt.Println("=== fmath.V3TransformQuat vs mgl32.Quat.Rotate ===")
	fmt.Println()
	fmt.Printf("%8s %-22s %10s\n", "Angle", "Axis", "MaxDelta")

	rotCases := []struct {
		angle float32
		axis  fmath.Vec3
		v     fmath.Vec3
	}{
		{90, fmath.Up, fmath.Right},
		{45, fmath.Right, fmath.Forward},
		{120, fmath.Vec3{X: 1, Y: 1, Z: 0}, fmath.Vec3{X: 0.5, Y: -2, Z: 1}},
		{-30, fmath.Forward, fmath.Up},
	}
	for _, tc := range rotCases {
		q := fmath.QFromAxisAngle(tc.angle, tc.axis)
		got := fmath.V3TransformQuat(tc.v, q)

		axis := mgl32.Vec3{tc.axis.X, tc.axis.Y, tc.axis.Z}.Normalize()
		want := mgl32.QuatRotate(tc.angle*fmath.DegToRad32, axis).Rotate(mgl32.Vec3{tc.v.X, tc.v.Y, tc.v.Z})

		fmt.Printf("%8.1f (%4.1f,%4.1f,%4.1f)      %10.2e\n",
			tc.angle, tc.axis.X, tc.axis.Y, tc.axis.Z, vecDelta(got, want))
	}
}

func main() {
	fmt.Println("fmath Approximation Benchmark")
	fmt.Println("=============================")
	fmt.Println()

	verifyAccuracy()

	fmt.Println()
	fmt.Println("=== Running Benchmarks ===")
	fmt.Println("Run with: go test -bench=. -benchmem ./cmd/fmath-bench/")
	fmt.Println()

	// Quick inline benchmark for immediate results
	iterations := 1000000

	start := time.Now()
	var sinkF float64
	for i := 0; i < iterations; i++ {
		sinkF = fmath.Sin(testAngles[i%sampleCount])
	}
	fastSin := time.Since(start)

	start = time.Now()
	for i := 0; i < iterations; i++ {
		sinkF = math.Sin(testAngles[i%sampleCount])
	}
	stdSin := time.Since(start)
	_ = sinkF

	matIters := 200000

	start = time.Now()
	var sinkM fmath.Matrix
	for i := 0; i < matIters; i++ {
		sinkM, _ = fmath.MMul(testMats[i%sampleCount], testMats[(i+1)%sampleCount])
	}
	mmulTime := time.Since(start)
	_ = sinkM

	start = time.Now()
	var sinkM32 mgl32.Mat4
	for i := 0; i < matIters; i++ {
		sinkM32 = testMats32[i%sampleCount].Mul4(testMats32[(i+1)%sampleCount])
	}
	mglTime := time.Since(start)
	_ = sinkM32

	start = time.Now()
	var sinkM64 mgl64.Mat4
	for i := 0; i < matIters; i++ {
		sinkM64 = testMats64[i%sampleCount].Mul4(testMats64[(i+1)%sampleCount])
	}
	mgl64Time := time.Since(start)
	_ = sinkM64

	fmt.Printf("Quick benchmark (%d iterations):\n", iterations)
	fmt.Printf("  fmath.Sin: %v\n", fastSin)
	fmt.Printf("  math.Sin:  %v (%.1f%% slower)\n",
		stdSin, float64(stdSin-fastSin)/float64(fastSin)*100)
	fmt.Println()
	fmt.Printf("Quick benchmark (%d iterations, 4x4 multiply):\n", matIters)
	fmt.Printf("  fmath.MMul:      %v (allocates per call)\n", mmulTime)
	fmt.Printf("  mgl32.Mat4.Mul4: %v\n", mglTime)
	fmt.Printf("  mgl64.Mat4.Mul4: %v\n", mgl64Time)
}
