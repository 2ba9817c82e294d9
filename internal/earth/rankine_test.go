package earth

import (
	"math"
	"testing"
)

func TestRankineThirtyDegrees(t *testing.T) {
	c, err := Rankine(30)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(c.Ka-1.0/3) > 1e-9 {
		t.Errorf("Ka = %.6f, want 0.3333", c.Ka)
	}
	if math.Abs(c.Kp-3) > 1e-9 {
		t.Errorf("Kp = %.6f, want 3.0", c.Kp)
	}
}

func TestKaKpProduct(t *testing.T) {
	for phi := 0.0; phi < 90; phi += 2.5 {
		c, err := Rankine(phi)
		if err != nil {
			t.Fatalf("phi=%.1f: %v", phi, err)
		}
		if math.Abs(c.Ka*c.Kp-1) > 1e-9 {
			t.Fatalf("phi=%.1f: Ka·Kp = %.12f", phi, c.Ka*c.Kp)
		}
	}
}

func TestRankineRejectsAngles(t *testing.T) {
	for _, phi := range []float64{-1, 90, 120} {
		if _, err := Rankine(phi); err == nil {
			t.Errorf("phi=%.0f: expected error", phi)
		}
	}
}

func TestWall(t *testing.T) {
	c, _ := Rankine(30)
	// H = 6, γ = 18: Pa = 0.5·(1/3)·18·36 = 108; surcharge hs = 1.2: (1/3)·18·1.2·6 = 43.2
	th := c.Wall(18, 6, 2, 1.2)
	if math.Abs(th.Active-108) > 1e-9 {
		t.Errorf("Pa = %.3f, want 108", th.Active)
	}
	if math.Abs(th.Surcharge-43.2) > 1e-9 {
		t.Errorf("surcharge = %.3f, want 43.2", th.Surcharge)
	}
	// Pp = 0.5·3·18·4 = 108
	if math.Abs(th.Passive-108) > 1e-9 {
		t.Errorf("Pp = %.3f, want 108", th.Passive)
	}
	wantM := 108*2 + 43.2*3
	if math.Abs(th.Moment-wantM) > 1e-9 {
		t.Errorf("moment = %.3f, want %.3f", th.Moment, wantM)
	}
	if th.Driving() != th.Active+th.Surcharge {
		t.Errorf("driving force mismatch")
	}
}
