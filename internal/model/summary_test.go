package model

import (
	"reflect"
	"testing"
)

func TestCountByType(t *testing.T) {
	elements := []Element{
		{Type: TypeButton},
		{Type: TypeButton},
		{Type: TypeLink},
	}
	got := CountByType(elements)
	want := map[string]int{TypeButton: 2, TypeLink: 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CountByType = %v, want %v", got, want)
	}
}

func TestCountByType_Empty(t *testing.T) {
	if got := CountByType(nil); got != nil {
		t.Errorf("CountByType(nil) = %v, want nil", got)
	}
}
