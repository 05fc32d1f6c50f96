// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package driver_test

import (
	"testing"

	"gviegas/ardor/driver"
	"gviegas/ardor/driver/rec"
)

func TestDrivers(t *testing.T) {
	driver.Register(&rec.Driver{DriverName: "rec-drivers-a"})
	driver.Register(&rec.Driver{DriverName: "rec-drivers-b"})
	driver.Register(&rec.Driver{DriverName: "rec-drivers-a"})

	drivers := driver.Drivers()
	for i := range drivers {
		name := drivers[i].Name()
		for j := range i {
			if name == drivers[j].Name() {
				t.Error("driver.Drivers: Driver.Name is not unique")
			}
		}
	}
	drivers2 := driver.Drivers()
	if len(drivers) != len(drivers2) {
		t.Error("driver.Drivers: length mismatch")
	} else {
		for i := range drivers {
			if drivers[i].Name() != drivers2[i].Name() {
				t.Error("driver.Drivers: Driver.Name mismatch")
			}
		}
	}
	n := 0
	for _, d := range drivers {
		switch d.Name() {
		case "rec-drivers-a", "rec-drivers-b":
			n++
		}
	}
	if n != 2 {
		t.Errorf("driver.Register: replaced driver\nhave %d\nwant 2", n)
	}
}

func TestDriverName(t *testing.T) {
	drv := &rec.Driver{DriverName: "rec-name"}
	name := drv.Name()
	if name == "" {
		t.Error("Driver.Name: name is empty")
	}
	drv.Close()
	if drv.Name() != name {
		t.Error("Driver.Name: unexpected name after call to Close")
	}
	_, err := drv.Open()
	if err != nil {
		t.Fatal("Failed to re-Open drv - cannot continue")
	}
	if drv.Name() != name {
		t.Error("Driver.Name: unexpected name after call to Open")
	}
}
