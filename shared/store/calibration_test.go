package store

import (
	"path/filepath"
	"testing"
)

func TestCalibrationRoundTrip(t *testing.T) {
	st, err := Open(filepath.Join(t.TempDir(), "cal.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	in := &Calibration{
		ID:         "/videos/show.y4m",
		MeshFile:   "projetor.mesh",
		Distortion: "barrel",
		Strength:   0.35,
	}
	if err := st.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := st.Load("/videos/show.y4m")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.MeshFile != in.MeshFile || out.Distortion != in.Distortion || out.Strength != in.Strength {
		t.Errorf("Load = %+v, want %+v", out, in)
	}
}

func TestCalibrationUpsert(t *testing.T) {
	st, err := Open(filepath.Join(t.TempDir(), "cal.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	st.Save(&Calibration{ID: "pattern", Distortion: "barrel", Strength: 0.3})
	st.Save(&Calibration{ID: "pattern", Distortion: "pincushion", Strength: 0.1})

	out, err := st.Load("pattern")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.Distortion != "pincushion" || out.Strength != 0.1 {
		t.Errorf("upsert não sobrescreveu: %+v", out)
	}
}

func TestCalibrationMissingKey(t *testing.T) {
	st, err := Open(filepath.Join(t.TempDir(), "cal.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	if _, err := st.Load("desconhecida"); err == nil {
		t.Error("Load de fonte sem calibração deveria falhar")
	}
}

func TestNilStoreIsSafe(t *testing.T) {
	var st *Store
	if err := st.Save(&Calibration{ID: "x"}); err == nil {
		t.Error("Save em store nil deveria falhar")
	}
	if _, err := st.Load("x"); err == nil {
		t.Error("Load em store nil deveria falhar")
	}
	st.Close() // não pode entrar em pânico
}
