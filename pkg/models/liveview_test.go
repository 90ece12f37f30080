package models

import (
	"reflect"
	"testing"
)

func TestLiveviewDecodeList(t *testing.T) {
	data := []byte(`[{
		"id": "lv1",
		"name": "All Cameras",
		"isDefault": true,
		"isGlobal": false,
		"owner": "user_abc",
		"layout": 4,
		"slots": [
			{"cameras": ["cam1", "cam2"], "cycleMode": "time", "cycleInterval": 10},
			{"cameras": ["cam3"], "cycleMode": "motion", "cycleInterval": 0}
		]
	}]`)

	liveviews, err := DecodeList[Liveview](data)
	if err != nil {
		t.Fatalf("DecodeList() error: %v", err)
	}
	if len(liveviews) != 1 {
		t.Fatalf("DecodeList() returned %d liveviews, want 1", len(liveviews))
	}

	lv := liveviews[0]
	if lv.ID != "lv1" || lv.Name != "All Cameras" || !lv.IsDefault || lv.IsGlobal {
		t.Errorf("unexpected liveview fields: %+v", lv)
	}
	if lv.Owner != "user_abc" || lv.Layout != 4 {
		t.Errorf("owner/layout = %q/%d, want user_abc/4", lv.Owner, lv.Layout)
	}

	wantSlots := []Slot{
		{Cameras: []string{"cam1", "cam2"}, CycleMode: "time", CycleInterval: 10},
		{Cameras: []string{"cam3"}, CycleMode: "motion", CycleInterval: 0},
	}
	if !reflect.DeepEqual(lv.Slots, wantSlots) {
		t.Errorf("slots = %+v, want %+v", lv.Slots, wantSlots)
	}
}

func TestLiveviewCSV(t *testing.T) {
	lv := Liveview{
		ID:        "lv1",
		Name:      "All Cameras",
		IsDefault: true,
		IsGlobal:  false,
		Owner:     "user_abc",
		Layout:    4,
		Slots:     []Slot{{Cameras: []string{"cam1"}}, {Cameras: []string{"cam2"}}},
	}

	wantHeader := "name,id,isDefault,isGlobal,owner,layout,slots"
	if got := lv.CSVHeader(); got != wantHeader {
		t.Errorf("CSVHeader() = %q, want %q", got, wantHeader)
	}

	wantRow := "All Cameras,lv1,true,false,user_abc,4,2"
	if got := lv.CSVRow(); got != wantRow {
		t.Errorf("CSVRow() = %q, want %q", got, wantRow)
	}
}

func TestViewportDecodeAndCSV(t *testing.T) {
	data := []byte(`[{"id":"vp1","name":"Lobby Screen","liveview":"lv1","state":"CONNECTED","streamLimit":4}]`)

	viewports, err := DecodeList[Viewport](data)
	if err != nil {
		t.Fatalf("DecodeList() error: %v", err)
	}
	if len(viewports) != 1 {
		t.Fatalf("DecodeList() returned %d viewports, want 1", len(viewports))
	}

	want := Viewport{ID: "vp1", Name: "Lobby Screen", Liveview: "lv1", State: "CONNECTED", StreamLimit: 4}
	if viewports[0] != want {
		t.Errorf("viewports[0] = %+v, want %+v", viewports[0], want)
	}

	if got := want.CSVHeader(); got != "name,id,liveview,state,streamLimit" {
		t.Errorf("CSVHeader() = %q", got)
	}
	if got := want.CSVRow(); got != "Lobby Screen,vp1,lv1,CONNECTED,4" {
		t.Errorf("CSVRow() = %q", got)
	}
}
