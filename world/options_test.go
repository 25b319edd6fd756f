package world

import "testing"

func TestAroundAndSpawn(t *testing.T) {
	o := FindOptions{}.Around(100, -50, 25)
	if o.MinX != 75 || o.MaxX != 125 || o.MinZ != -75 || o.MaxZ != -25 {
		t.Fatalf("Around produced unexpected bounds: %+v", o)
	}

	s := FindOptions{}.Spawn(25)
	if s.MinX != -25 || s.MaxX != 25 || s.MinZ != -25 || s.MaxZ != 25 {
		t.Fatalf("Spawn produced unexpected bounds: %+v", s)
	}
}

func TestInbounds(t *testing.T) {
	o := FindOptions{}.Inbounds()
	if o.MinX != -FARLANDS || o.MaxX != FARLANDS || o.MinZ != -FARLANDS || o.MaxZ != FARLANDS {
		t.Fatalf("Inbounds produced unexpected bounds: %+v", o)
	}
}

func TestWraps(t *testing.T) {
	o := FindOptions{}.Wraps()
	if o.MinX != 0 || o.MaxX != MonolithsRepeat || o.MinZ != 0 || o.MaxZ != MonolithsRepeat {
		t.Fatalf("Wraps produced unexpected bounds: %+v", o)
	}
	if MonolithsRepeat != 8_388_608 {
		t.Fatalf("MonolithsRepeat = %d, want 8388608", MonolithsRepeat)
	}
}

func TestBuilderMethodsAreChainable(t *testing.T) {
	o := FindOptions{Step: 4, Limit: 10}.Spawn(50)
	if o.Step != 4 || o.Limit != 10 {
		t.Fatalf("Spawn should preserve unrelated fields, got %+v", o)
	}
}
