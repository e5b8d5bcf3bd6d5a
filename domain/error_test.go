package domain

import (
	"errors"
	"testing"
)

func TestInvalidLengthError(t *testing.T) {
	t.Run("Error message formatting", func(t *testing.T) {
		err := NewInvalidLengthError(-3)
		expected := "invalid length: -3 (must be a positive number of bytes)"
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
	})

	t.Run("errors.Is detection", func(t *testing.T) {
		err := NewInvalidLengthError(0)
		target := &InvalidLengthError{}
		if !errors.Is(err, target) {
			t.Error("errors.Is should detect InvalidLengthError")
		}
	})

	t.Run("errors.As conversion", func(t *testing.T) {
		err := NewInvalidLengthError(-7)
		var ile *InvalidLengthError
		if !errors.As(err, &ile) {
			t.Fatal("errors.As should convert to InvalidLengthError")
		}
		if ile.Length != -7 {
			t.Errorf("expected Length -7, got %d", ile.Length)
		}
	})

	t.Run("IsInvalidLengthError helper", func(t *testing.T) {
		err := NewInvalidLengthError(0)
		if !IsInvalidLengthError(err) {
			t.Error("IsInvalidLengthError should return true")
		}
	})
}

func TestUnknownPresetError(t *testing.T) {
	t.Run("Error message formatting", func(t *testing.T) {
		err := NewUnknownPresetError("aes512")
		expected := "unknown preset: aes512"
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
	})

	t.Run("errors.As conversion", func(t *testing.T) {
		err := NewUnknownPresetError("des")
		var upe *UnknownPresetError
		if !errors.As(err, &upe) {
			t.Fatal("errors.As should convert to UnknownPresetError")
		}
		if upe.Name != "des" {
			t.Errorf("expected Name des, got %s", upe.Name)
		}
	})

	t.Run("IsUnknownPresetError helper", func(t *testing.T) {
		err := NewUnknownPresetError("rc4")
		if !IsUnknownPresetError(err) {
			t.Error("IsUnknownPresetError should return true")
		}
	})
}

func TestUnsupportedUUIDVersionError(t *testing.T) {
	t.Run("Error message formatting", func(t *testing.T) {
		err := NewUnsupportedUUIDVersionError("v2")
		expected := "unsupported uuid version: v2 (supported: v1, v3, v4, v5)"
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
	})

	t.Run("IsUnsupportedUUIDVersionError helper", func(t *testing.T) {
		err := NewUnsupportedUUIDVersionError("v7")
		if !IsUnsupportedUUIDVersionError(err) {
			t.Error("IsUnsupportedUUIDVersionError should return true")
		}
	})
}

func TestMissingNamespaceOrNameError(t *testing.T) {
	t.Run("Error message formatting", func(t *testing.T) {
		err := NewMissingNamespaceOrNameError("v5")
		expected := "namespace and name are required for uuid v5"
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
	})

	t.Run("IsMissingNamespaceOrNameError helper", func(t *testing.T) {
		err := NewMissingNamespaceOrNameError("v3")
		if !IsMissingNamespaceOrNameError(err) {
			t.Error("IsMissingNamespaceOrNameError should return true")
		}
	})
}

func TestInvalidNamespaceError(t *testing.T) {
	t.Run("Wraps the parse error", func(t *testing.T) {
		cause := errors.New("invalid UUID length: 10")
		err := NewInvalidNamespaceError("not-a-uuid", cause)
		if !errors.Is(err, cause) {
			t.Error("errors.Is should reach the wrapped parse error")
		}
	})

	t.Run("errors.As conversion", func(t *testing.T) {
		err := NewInvalidNamespaceError("xyz", errors.New("bad"))
		var ine *InvalidNamespaceError
		if !errors.As(err, &ine) {
			t.Fatal("errors.As should convert to InvalidNamespaceError")
		}
		if ine.Text != "xyz" {
			t.Errorf("expected Text xyz, got %s", ine.Text)
		}
	})

	t.Run("IsInvalidNamespaceError helper", func(t *testing.T) {
		err := NewInvalidNamespaceError("not-a-uuid", errors.New("bad"))
		if !IsInvalidNamespaceError(err) {
			t.Error("IsInvalidNamespaceError should return true")
		}
	})
}

func TestRandomSourceError(t *testing.T) {
	t.Run("Wraps the OS error", func(t *testing.T) {
		cause := errors.New("entropy pool exhausted")
		err := NewRandomSourceError(cause)
		if !errors.Is(err, cause) {
			t.Error("errors.Is should reach the wrapped OS error")
		}
	})

	t.Run("IsRandomSourceError helper", func(t *testing.T) {
		err := NewRandomSourceError(errors.New("read failed"))
		if !IsRandomSourceError(err) {
			t.Error("IsRandomSourceError should return true")
		}
	})
}

func TestErrorTypeDiscrimination(t *testing.T) {
	t.Run("Different error types are not confused", func(t *testing.T) {
		lenErr := NewInvalidLengthError(0)
		presetErr := NewUnknownPresetError("aes512")
		verErr := NewUnsupportedUUIDVersionError("v2")

		if !IsInvalidLengthError(lenErr) {
			t.Error("should identify InvalidLengthError")
		}
		if IsUnknownPresetError(lenErr) {
			t.Error("InvalidLengthError should not be UnknownPresetError")
		}
		if IsUnsupportedUUIDVersionError(lenErr) {
			t.Error("InvalidLengthError should not be UnsupportedUUIDVersionError")
		}

		if !IsUnknownPresetError(presetErr) {
			t.Error("should identify UnknownPresetError")
		}
		if IsInvalidLengthError(presetErr) {
			t.Error("UnknownPresetError should not be InvalidLengthError")
		}

		if !IsUnsupportedUUIDVersionError(verErr) {
			t.Error("should identify UnsupportedUUIDVersionError")
		}
		if IsMissingNamespaceOrNameError(verErr) {
			t.Error("UnsupportedUUIDVersionError should not be MissingNamespaceOrNameError")
		}
	})
}
