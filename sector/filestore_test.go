package sector

import (
	"path/filepath"
	"testing"
)

func TestFileStoreMissingFile(t *testing.T) {
	fs, err := OpenFileStore(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatalf("Missing file should yield an empty store, got %v", err)
	}
	all, err := fs.GetAll()
	if err != nil || len(all) != 0 {
		t.Errorf("Expected empty dataset, got %d sectors, err %v", len(all), err)
	}
}

func TestFileStoreUpsertByAddress(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sectors.toml")
	fs, err := OpenFileStore(path)
	if err != nil {
		t.Fatal(err)
	}

	s := Sector{Address: "0xabc", Name: "Kessel", Waat: "181"}
	if err := fs.Save(s); err != nil {
		t.Fatal(err)
	}

	// Same address again with a resolved hecke: update, no duplicate
	s.Hecke = &HeckePair{Lat: "7", Lon: "9"}
	if err := fs.Save(s); err != nil {
		t.Fatal(err)
	}

	all, _ := fs.GetAll()
	if len(all) != 1 {
		t.Fatalf("Expected 1 sector after upsert, got %d", len(all))
	}
	if all[0].Hecke == nil || all[0].Hecke.Lat != "7" {
		t.Error("Upsert did not replace the stored sector")
	}
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sectors.toml")

	fs, _ := OpenFileStore(path)
	fs.Save(Sector{Address: "0x1", Name: "Prime", IsSystem: true, Waat: "99"})
	fs.Save(Sector{Address: "0x2", Name: "Drift", Waat: "424242",
		Hecke: &HeckePair{Lat: "12", Lon: "-4"}})

	reopened, err := OpenFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	all, _ := reopened.GetAll()
	if len(all) != 2 {
		t.Fatalf("Expected 2 sectors after reopen, got %d", len(all))
	}

	byAddr := map[string]Sector{}
	for _, s := range all {
		byAddr[s.Address] = s
	}
	if !byAddr["0x1"].IsSystem {
		t.Error("IsSystem flag lost across reopen")
	}
	h := byAddr["0x2"].Hecke
	if h == nil || h.Lat != "12" || h.Lon != "-4" {
		t.Errorf("Hecke pair lost across reopen: %+v", h)
	}
}
