package fmath

import (
	"testing"

	"github.com/chewxy/math32"
)

func mNear(a, b Matrix, tol float32) bool {
	if a.Dimension() != b.Dimension() {
		return false
	}
	for i := 0; i < a.Dimension(); i++ {
		for j := 0; j < a.Dimension(); j++ {
			if math32.Abs(a.Get(i, j)-b.Get(i, j)) > tol {
				return false
			}
		}
	}
	return true
}

func TestIndex(t *testing.T) {
	if got := Index(0, 0, 4); got != 0 {
		t.Errorf("Expected Index(0, 0, 4) to be 0, got %d", got)
	}
	if got := Index(1, 2, 4); got != 6 {
		t.Errorf("Expected Index(1, 2, 4) to be 6, got %d", got)
	}
	if got := Index(3, 3, 4); got != 15 {
		t.Errorf("Expected Index(3, 3, 4) to be 15, got %d", got)
	}
}

func TestNewMatrixIdentity(t *testing.T) {
	for _, dim := range []int{1, 2, 3, 4} {
		m := NewMatrix(dim)
		if m.Dimension() != dim {
			t.Fatalf("Expected dimension %d, got %d", dim, m.Dimension())
		}
		for i := 0; i < dim; i++ {
			for j := 0; j < dim; j++ {
				want := float32(0)
				if i == j {
					want = 1
				}
				if got := m.Get(i, j); got != want {
					t.Errorf("dim %d: expected (%d, %d) to be %v, got %v", dim, i, j, want, got)
				}
			}
		}
	}
}

// TestMatrixSharedStorage pins the header semantics: copies write
// through to the same entries.
func TestMatrixSharedStorage(t *testing.T) {
	a := Identity()
	b := a
	b.Set(0, 1, 5)
	if got := a.Get(0, 1); got != 5 {
		t.Errorf("Expected the copy to share storage, got %v", got)
	}
}

func TestMAdd(t *testing.T) {
	got, err := MAdd(Identity(), Identity())
	if err != nil {
		t.Fatalf("MAdd returned error: %v", err)
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := float32(0)
			if i == j {
				want = 2
			}
			if got.Get(i, j) != want {
				t.Errorf("Expected (%d, %d) to be %v, got %v", i, j, want, got.Get(i, j))
			}
		}
	}
}

func TestMAddDimensionMismatch(t *testing.T) {
	if _, err := MAdd(NewMatrix(3), NewMatrix(4)); err == nil {
		t.Error("Expected MAdd on mixed dimensions to return an error")
	}
}

func TestMMulIdentityLaws(t *testing.T) {
	m := NewMatrix(4)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m.Set(i, j, float32(i*4+j+1))
		}
	}

	left, err := MMul(Identity(), m)
	if err != nil {
		t.Fatalf("MMul returned error: %v", err)
	}
	if !mNear(left, m, 0) {
		t.Error("Expected identity*m to be m")
	}

	right, err := MMul(m, Identity())
	if err != nil {
		t.Fatalf("MMul returned error: %v", err)
	}
	if !mNear(right, m, 0) {
		t.Error("Expected m*identity to be m")
	}
}

func TestMMulKnownProduct(t *testing.T) {
	a := NewMatrix(2)
	a.Set(0, 0, 1)
	a.Set(0, 1, 2)
	a.Set(1, 0, 3)
	a.Set(1, 1, 4)

	b := NewMatrix(2)
	b.Set(0, 0, 5)
	b.Set(0, 1, 6)
	b.Set(1, 0, 7)
	b.Set(1, 1, 8)

	got, err := MMul(a, b)
	if err != nil {
		t.Fatalf("MMul returned error: %v", err)
	}
	want := [2][2]float32{{19, 22}, {43, 50}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if got.Get(i, j) != want[i][j] {
				t.Errorf("Expected (%d, %d) to be %v, got %v", i, j, want[i][j], got.Get(i, j))
			}
		}
	}
}

func TestMMulDimensionMismatch(t *testing.T) {
	if _, err := MMul(NewMatrix(3), NewMatrix(4)); err == nil {
		t.Error("Expected MMul on mixed dimensions to return an error")
	}
}

func TestTranslateLayout(t *testing.T) {
	m := Translate(Vec3{5, 6, 7})
	if m.Get(3, 0) != 5 || m.Get(3, 1) != 6 || m.Get(3, 2) != 7 {
		t.Errorf("Expected the offset across row 3, got %v %v %v", m.Get(3, 0), m.Get(3, 1), m.Get(3, 2))
	}
	if m.Get(0, 0) != 1 || m.Get(3, 3) != 1 {
		t.Error("Expected the rest of the matrix to stay identity")
	}
}

func TestScale(t *testing.T) {
	m := Scale(3)
	if m.Get(0, 0) != 3 || m.Get(1, 1) != 3 || m.Get(2, 2) != 3 {
		t.Error("Expected 3 on the first three diagonal entries")
	}
	if m.Get(3, 3) != 1 {
		t.Errorf("Expected (3, 3) to stay 1, got %v", m.Get(3, 3))
	}

	mv := ScaleVec(Vec3{2, 4, 8})
	if mv.Get(0, 0) != 2 || mv.Get(1, 1) != 4 || mv.Get(2, 2) != 8 {
		t.Error("Expected the per-axis factors on the diagonal")
	}
}

func TestRotateAxisEntries(t *testing.T) {
	near := func(got, want float32) bool { return math32.Abs(got-want) <= 1e-6 }

	x := RotateX(90)
	if !near(x.Get(1, 1), 0) || !near(x.Get(1, 2), -1) || !near(x.Get(2, 1), 1) || !near(x.Get(2, 2), 0) {
		t.Errorf("RotateX(90) block wrong: %v %v %v %v", x.Get(1, 1), x.Get(1, 2), x.Get(2, 1), x.Get(2, 2))
	}
	if x.Get(0, 0) != 1 || x.Get(3, 3) != 1 {
		t.Error("Expected RotateX to leave the x row and homogeneous row alone")
	}

	y := RotateY(90)
	if !near(y.Get(0, 0), 0) || !near(y.Get(0, 2), 1) || !near(y.Get(2, 0), -1) || !near(y.Get(2, 2), 0) {
		t.Errorf("RotateY(90) block wrong: %v %v %v %v", y.Get(0, 0), y.Get(0, 2), y.Get(2, 0), y.Get(2, 2))
	}

	z := RotateZ(90)
	if !near(z.Get(0, 0), 0) || !near(z.Get(0, 1), -1) || !near(z.Get(1, 0), 1) || !near(z.Get(1, 1), 0) {
		t.Errorf("RotateZ(90) block wrong: %v %v %v %v", z.Get(0, 0), z.Get(0, 1), z.Get(1, 0), z.Get(1, 1))
	}
}

// TestRotateQuatMatchesAxisRotation cross-checks the two rotation paths
// against each other.
func TestRotateQuatMatchesAxisRotation(t *testing.T) {
	if !mNear(RotateQuat(QFromAxisAngle(90, Up)), RotateY(90), 1e-5) {
		t.Error("Expected the quaternion path to match RotateY(90)")
	}
	if !mNear(RotateQuat(QFromAxisAngle(45, Right)), RotateX(45), 1e-5) {
		t.Error("Expected the quaternion path to match RotateX(45)")
	}
	if !mNear(RotateQuat(QIdentity), Identity(), 0) {
		t.Error("Expected the identity quaternion to give the identity matrix")
	}
}

func TestV3TransformRotation(t *testing.T) {
	got := V3Transform(Vec3{1, 0, 0}, RotateY(90))
	if !v3Near(got, Vec3{0, 0, -1}, 1e-6) {
		t.Errorf("Expected a quarter yaw to carry x to -z, got %v", got)
	}

	got = V3Transform(Vec3{0, 0, 1}, RotateY(90))
	if !v3Near(got, Vec3{1, 0, 0}, 1e-6) {
		t.Errorf("Expected a quarter yaw to carry z to x, got %v", got)
	}
}

// TestV3TransformTranslationQuirk pins where offsets must live: row 3
// is invisible to the transform, column 3 moves the point.
func TestV3TransformTranslationQuirk(t *testing.T) {
	m := Translate(Vec3{5, 6, 7})
	if got := V3Transform(Vec3{1, 2, 3}, m); got != (Vec3{1, 2, 3}) {
		t.Errorf("Expected row 3 offsets to leave the point alone, got %v", got)
	}

	m = Identity()
	m.Set(0, 3, 5)
	m.Set(1, 3, 6)
	m.Set(2, 3, 7)
	if got := V3Transform(Vec3{1, 2, 3}, m); got != (Vec3{6, 8, 10}) {
		t.Errorf("Expected column 3 offsets to move the point, got %v", got)
	}
}

func TestLookAt(t *testing.T) {
	m := LookAt(Vec3{0, 0, 5}, V3Zero, Up)

	// the rotation block is identity for a camera on the +z axis
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := float32(0)
			if i == j {
				want = 1
			}
			if math32.Abs(m.Get(i, j)-want) > 1e-6 {
				t.Errorf("Expected rotation entry (%d, %d) to be %v, got %v", i, j, want, m.Get(i, j))
			}
		}
	}
	if math32.Abs(m.Get(3, 2)+5) > 1e-6 {
		t.Errorf("Expected the eye offset -5 at (3, 2), got %v", m.Get(3, 2))
	}
	if m.Get(3, 0) != 0 || m.Get(3, 1) != 0 || m.Get(3, 3) != 1 {
		t.Error("Expected the remaining offsets to be zero")
	}
}

// TestLookAtOffsetRow checks the translated row against the projected
// eye position for an off-origin camera.
func TestLookAtOffsetRow(t *testing.T) {
	eye := Vec3{1, 2, 3}
	m := LookAt(eye, Vec3{1, 2, 0}, Up)

	// looking down -z: s = Right, u = Up, f = -Forward
	if math32.Abs(m.Get(3, 0)+1) > 1e-6 {
		t.Errorf("Expected -eye.s at (3, 0), got %v", m.Get(3, 0))
	}
	if math32.Abs(m.Get(3, 1)+2) > 1e-6 {
		t.Errorf("Expected -eye.u at (3, 1), got %v", m.Get(3, 1))
	}
	if math32.Abs(m.Get(3, 2)+3) > 1e-6 {
		t.Errorf("Expected eye.f at (3, 2), got %v", m.Get(3, 2))
	}
}

func TestPerspectiveEntries(t *testing.T) {
	m := Perspective(90, 1, 1, 10)

	tests := []struct {
		name string
		x, y int
		want float32
	}{
		{"X focal", 0, 0, 1},
		{"Y focal", 1, 1, 1},
		{"X center", 0, 2, 0},
		{"Y center", 1, 2, 0},
		{"Depth scale", 2, 2, -11.0 / 9.0},
		{"W from -z", 2, 3, -1},
		{"Depth offset", 3, 2, -20.0 / 9.0},
		{"W drop", 3, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Get(tt.x, tt.y); math32.Abs(got-tt.want) > 1e-5 {
				t.Errorf("Expected (%d, %d) to be %v, got %v", tt.x, tt.y, tt.want, got)
			}
		})
	}
}

func TestOrthographicEntries(t *testing.T) {
	m := Orthographic(2, -2, 1, -1, 1, 100)

	if got := m.Get(0, 0); math32.Abs(got-0.5) > 1e-6 {
		t.Errorf("Expected (0, 0) to be 0.5, got %v", got)
	}
	if got := m.Get(1, 1); math32.Abs(got-1) > 1e-6 {
		t.Errorf("Expected (1, 1) to be 1, got %v", got)
	}
	if got := m.Get(2, 2); math32.Abs(got+101.0/99.0) > 1e-6 {
		t.Errorf("Expected (2, 2) to be -101/99, got %v", got)
	}
	if got := m.Get(3, 2); math32.Abs(got+200.0/99.0) > 1e-6 {
		t.Errorf("Expected (3, 2) to be -200/99, got %v", got)
	}
	if m.Get(2, 3) != -1 {
		t.Errorf("Expected (2, 3) to be -1, got %v", m.Get(2, 3))
	}
	if m.Get(3, 3) != 0 {
		t.Errorf("Expected (3, 3) to be 0, got %v", m.Get(3, 3))
	}
}

func TestMTranspose(t *testing.T) {
	m := NewMatrix(2)
	m.Set(0, 0, 1)
	m.Set(0, 1, 2)
	m.Set(1, 0, 3)
	m.Set(1, 1, 4)

	tr := MTranspose(m)
	if tr.Get(0, 1) != 3 || tr.Get(1, 0) != 2 {
		t.Errorf("Expected the off-diagonal to swap, got %v and %v", tr.Get(0, 1), tr.Get(1, 0))
	}
	if !mNear(MTranspose(tr), m, 0) {
		t.Error("Expected a double transpose to restore the matrix")
	}
}

func TestMRoundHalvesUp(t *testing.T) {
	m := NewMatrix(2)
	m.Set(0, 0, 1.4)
	m.Set(0, 1, 1.5)
	m.Set(1, 0, -1.5)
	m.Set(1, 1, -1.4)

	r := MRound(m)
	if r.Get(0, 0) != 1 || r.Get(0, 1) != 2 {
		t.Errorf("Expected 1 and 2, got %v and %v", r.Get(0, 0), r.Get(0, 1))
	}
	if r.Get(1, 0) != -1 || r.Get(1, 1) != -1 {
		t.Errorf("Expected -1 and -1, got %v and %v", r.Get(1, 0), r.Get(1, 1))
	}
}

// TestMToArrayCopies verifies the exported slice is detached from the
// matrix storage.
func TestMToArrayCopies(t *testing.T) {
	m := Identity()
	arr := MToArray(m)
	if len(arr) != 16 {
		t.Fatalf("Expected 16 entries, got %d", len(arr))
	}
	if arr[Index(2, 2, 4)] != 1 || arr[Index(2, 3, 4)] != 0 {
		t.Error("Expected row-major identity layout")
	}

	arr[0] = 99
	if m.Get(0, 0) != 1 {
		t.Errorf("Expected the matrix to keep 1 after mutating the copy, got %v", m.Get(0, 0))
	}
}
