package schema

import "testing"

func TestValidate_Output(t *testing.T) {
	valid := []byte(`{
		"identifier": "book123",
		"format-version": "2",
		"archive-hocr-tools-version": "1.0.0",
		"confidence": 87,
		"pages": [
			{"leafNum": 0, "confidence": 90, "pageNumber": "1", "pageProb": 95, "wordConf": 88}
		]
	}`)
	if err := Validate(Output, valid); err != nil {
		t.Fatalf("expected valid document, got error: %v", err)
	}

	invalid := []byte(`{"format-version": "2"}`)
	if err := Validate(Output, invalid); err == nil {
		t.Fatal("expected validation error for document missing required fields")
	}

	badVersion := []byte(`{
		"format-version": "1",
		"archive-hocr-tools-version": "1.0.0",
		"confidence": 50,
		"pages": []
	}`)
	if err := Validate(Output, badVersion); err == nil {
		t.Fatal("expected validation error for wrong format-version")
	}
}

func TestValidate_Scandata(t *testing.T) {
	valid := []byte(`{"skip_leaves": [0, 1, 5]}`)
	if err := Validate(Scandata, valid); err != nil {
		t.Fatalf("expected valid scandata document, got error: %v", err)
	}

	invalid := []byte(`{"skip_leaves": ["a"]}`)
	if err := Validate(Scandata, invalid); err == nil {
		t.Fatal("expected validation error for non-integer skip leaf")
	}
}

func TestNewValidator_UnknownSchema(t *testing.T) {
	if _, err := NewValidator(Name("bogus")); err == nil {
		t.Fatal("expected error for unknown schema name")
	}
}
