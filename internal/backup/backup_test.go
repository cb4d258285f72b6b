package backup

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateListRestoreJSON(t *testing.T) {
	dir := t.TempDir()
	storePath := filepath.Join(dir, "wellbee.json")
	if err := os.WriteFile(storePath, []byte(`{"version":1}`), 0600); err != nil {
		t.Fatal(err)
	}

	m := NewManager(storePath)
	backupPath, err := m.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 1 || backups[0].Path != backupPath {
		t.Errorf("ListBackups() = %v, want one entry at %s", backups, backupPath)
	}

	// Mutate, then restore the original content.
	if err := os.WriteFile(storePath, []byte(`{"version":1,"subscribed":true}`), 0600); err != nil {
		t.Fatal(err)
	}
	if err := m.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup() error = %v", err)
	}
	data, err := os.ReadFile(storePath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"version":1}` {
		t.Errorf("restored content = %s", data)
	}

	// Restore took a safety backup of the mutated store first.
	backups, err = m.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 2 {
		t.Errorf("backup count after restore = %d, want 2", len(backups))
	}
}

func TestCreateBackupMissingStore(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := m.CreateBackup(); err == nil {
		t.Error("CreateBackup() should fail when the store does not exist")
	}
}

func TestListBackupsEmptyDir(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "wellbee.json"))
	backups, err := m.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 0 {
		t.Errorf("ListBackups() = %v, want empty", backups)
	}
}
