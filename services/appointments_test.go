package services

import (
	"net/http"
	"testing"

	"github.com/Fecu3799/project-arq-web/models"
)

func lifecycleFixture() (*memStore, *DefaultAppointmentService) {
	store := &memStore{
		services: []models.Service{
			{ID: 1, Name: "Haircut", DurationMin: 30, Price: 1500, Active: true},
			{ID: 2, Name: "Beard trim", DurationMin: 30, Price: 800, Active: true},
			{ID: 3, Name: "Massage", DurationMin: 60, Price: 3000, Active: true},
		},
		schedule: models.ScheduleConfig{
			Workdays:   []string{"LUN", "MAR", "MIE", "JUE", "VIE"},
			StartTime:  "09:00",
			EndTime:    "12:00",
			Exceptions: []string{},
		},
	}
	svc := &DefaultAppointmentService{Store: store, Now: fixedNow}
	return store, svc
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCreate_BooksAvailableSlot(t *testing.T) {
	store, svc := lifecycleFixture()
	store.appointments = []models.Appointment{
		{ID: 7, ServiceID: 1, Start: "12-11-26 10:00", End: "12-11-26 10:30", Status: models.StatusConfirmed},
	}

	created, err := svc.Create(CreateAppointmentInput{ServiceID: 1, Date: "12-11-26", Time: "09:00"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 8 {
		t.Fatalf("expected monotonic next id 8, got %d", created.ID)
	}
	if created.Status != models.StatusConfirmed {
		t.Fatalf("expected status confirmed, got %s", created.Status)
	}
	if created.Start != "12-11-26 09:00" || created.End != "12-11-26 09:30" {
		t.Fatalf("expected end = start + duration, got [%s, %s)", created.Start, created.End)
	}
	if created.CreatedAt != created.UpdatedAt || created.CreatedAt == "" {
		t.Fatalf("expected created_at == updated_at, got %q and %q", created.CreatedAt, created.UpdatedAt)
	}
	if len(store.appointments) != 2 {
		t.Fatalf("expected collection of 2, got %d", len(store.appointments))
	}
}

func TestCreate_BookedSlotBecomesOccupied(t *testing.T) {
	store, svc := lifecycleFixture()
	store.appointments = []models.Appointment{}

	if _, err := svc.Create(CreateAppointmentInput{ServiceID: 1, Date: "12-11-26", Time: "09:00"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	availability := &DefaultAvailabilityService{Store: store, Now: fixedNow}
	slots, err := availability.GetDayAvailability("12-11-26", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, slot := range slots {
		if slot.Time == "12-11-26 09:00" {
			if slot.Status != models.SlotOccupied {
				t.Fatalf("expected freshly booked slot to be occupied, got %s", slot.Status)
			}
			return
		}
	}
	t.Fatal("booked slot missing from availability")
}

func TestCreate_OccupiedSlotConflicts(t *testing.T) {
	store, svc := lifecycleFixture()
	store.appointments = []models.Appointment{
		{ID: 1, ServiceID: 1, Start: "12-11-26 09:00", End: "12-11-26 09:30", Status: models.StatusConfirmed},
	}

	_, err := svc.Create(CreateAppointmentInput{ServiceID: 1, Date: "12-11-26", Time: "09:00"})
	assertStatus(t, err, http.StatusConflict)
	if len(store.appointments) != 1 {
		t.Fatalf("conflicting create must not write, collection has %d records", len(store.appointments))
	}
}

func TestCreate_IdsNeverReused(t *testing.T) {
	store, svc := lifecycleFixture()
	store.appointments = []models.Appointment{
		{ID: 5, ServiceID: 1, Start: "12-11-26 09:00", End: "12-11-26 09:30", Status: models.StatusCancelled},
	}

	created, err := svc.Create(CreateAppointmentInput{ServiceID: 1, Date: "12-11-26", Time: "09:00"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 6 {
		t.Fatalf("ids must stay monotonic across cancellations, got %d", created.ID)
	}
}

func TestCreate_MissingFieldsInvalid(t *testing.T) {
	_, svc := lifecycleFixture()
	cases := []CreateAppointmentInput{
		{ServiceID: 0, Date: "12-11-26", Time: "09:00"},
		{ServiceID: 1, Date: "", Time: "09:00"},
		{ServiceID: 1, Date: "12-11-26", Time: ""},
	}
	for i, input := range cases {
		_, err := svc.Create(input)
		if err == nil {
			t.Fatalf("case %d: expected error", i)
		}
		assertStatus(t, err, http.StatusBadRequest)
	}
}

func TestCreate_InactiveServiceNotFound(t *testing.T) {
	store, svc := lifecycleFixture()
	store.services[0].Active = false

	_, err := svc.Create(CreateAppointmentInput{ServiceID: 1, Date: "12-11-26", Time: "09:00"})
	assertStatus(t, err, http.StatusNotFound)
}

func TestCreate_ClosedDayConflicts(t *testing.T) {
	_, svc := lifecycleFixture()

	// 14-11-26 is a Saturday: the day produces no slots, so the requested one
	// cannot be available.
	_, err := svc.Create(CreateAppointmentInput{ServiceID: 1, Date: "14-11-26", Time: "09:00"})
	assertStatus(t, err, http.StatusConflict)
}

func TestUpdate_CancelConfirmedAppointment(t *testing.T) {
	store, svc := lifecycleFixture()
	store.appointments = []models.Appointment{
		{ID: 1, ServiceID: 1, Start: "12-11-26 09:00", End: "12-11-26 09:30",
			Status: models.StatusConfirmed, CreatedAt: "01-11-26 12:00", UpdatedAt: "01-11-26 12:00"},
	}

	updated, err := svc.Update(1, AppointmentPatch{Status: strPtr("cancelled")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != models.StatusCancelled {
		t.Fatalf("expected cancelled, got %s", updated.Status)
	}
	if updated.UpdatedAt == "01-11-26 12:00" {
		t.Fatal("expected updated_at to be refreshed")
	}

	// The second identical cancellation must conflict.
	_, err = svc.Update(1, AppointmentPatch{Status: strPtr("cancelled")})
	assertStatus(t, err, http.StatusConflict)
}

func TestUpdate_TerminalStateAdmitsNoFurtherChange(t *testing.T) {
	store, svc := lifecycleFixture()
	store.appointments = []models.Appointment{
		{ID: 1, ServiceID: 1, Start: "12-11-26 09:00", End: "12-11-26 09:30", Status: models.StatusCancelled},
	}

	// A different terminal status on a closed appointment still conflicts.
	_, err := svc.Update(1, AppointmentPatch{Status: strPtr("no_show")})
	assertStatus(t, err, http.StatusConflict)

	// So does a reschedule.
	_, err = svc.Update(1, AppointmentPatch{Date: strPtr("12-11-26"), Time: strPtr("10:00")})
	assertStatus(t, err, http.StatusConflict)
}

func TestUpdate_ConfirmedIsNotAnAllowedTarget(t *testing.T) {
	store, svc := lifecycleFixture()
	store.appointments = []models.Appointment{
		{ID: 1, ServiceID: 1, Start: "12-11-26 09:00", End: "12-11-26 09:30", Status: models.StatusConfirmed},
	}

	_, err := svc.Update(1, AppointmentPatch{Status: strPtr("confirmed")})
	assertStatus(t, err, http.StatusBadRequest)
}

func TestUpdate_BothIntentsRejected(t *testing.T) {
	store, svc := lifecycleFixture()
	store.appointments = []models.Appointment{
		{ID: 1, ServiceID: 1, Start: "12-11-26 09:00", End: "12-11-26 09:30", Status: models.StatusConfirmed},
	}

	_, err := svc.Update(1, AppointmentPatch{
		Status: strPtr("cancelled"),
		Date:   strPtr("12-11-26"),
		Time:   strPtr("10:00"),
	})
	assertStatus(t, err, http.StatusBadRequest)
}

func TestUpdate_EmptyPatchRejected(t *testing.T) {
	_, svc := lifecycleFixture()
	_, err := svc.Update(1, AppointmentPatch{})
	assertStatus(t, err, http.StatusBadRequest)
}

func TestUpdate_RescheduleRequiresDateAndTime(t *testing.T) {
	store, svc := lifecycleFixture()
	store.appointments = []models.Appointment{
		{ID: 1, ServiceID: 1, Start: "12-11-26 09:00", End: "12-11-26 09:30", Status: models.StatusConfirmed},
	}

	_, err := svc.Update(1, AppointmentPatch{Date: strPtr("13-11-26")})
	assertStatus(t, err, http.StatusBadRequest)

	_, err = svc.Update(1, AppointmentPatch{Time: strPtr("10:00")})
	assertStatus(t, err, http.StatusBadRequest)

	_, err = svc.Update(1, AppointmentPatch{Date: strPtr("  "), Time: strPtr("10:00")})
	assertStatus(t, err, http.StatusBadRequest)
}

func TestUpdate_RescheduleMovesSlot(t *testing.T) {
	store, svc := lifecycleFixture()
	store.appointments = []models.Appointment{
		{ID: 1, ServiceID: 1, Start: "12-11-26 09:00", End: "12-11-26 09:30", Status: models.StatusConfirmed},
	}

	updated, err := svc.Update(1, AppointmentPatch{Date: strPtr("12-11-26"), Time: strPtr("10:00")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Start != "12-11-26 10:00" || updated.End != "12-11-26 10:30" {
		t.Fatalf("reschedule landed on [%s, %s)", updated.Start, updated.End)
	}
	if updated.ServiceID != 1 {
		t.Fatalf("service_id must default to the current one, got %d", updated.ServiceID)
	}
	if updated.Status != models.StatusConfirmed {
		t.Fatalf("reschedule must keep the confirmed state, got %s", updated.Status)
	}
}

func TestUpdate_RescheduleOntoOccupiedSlotConflicts(t *testing.T) {
	store, svc := lifecycleFixture()
	store.appointments = []models.Appointment{
		{ID: 1, ServiceID: 1, Start: "12-11-26 09:00", End: "12-11-26 09:30", Status: models.StatusConfirmed},
		{ID: 2, ServiceID: 1, Start: "12-11-26 10:00", End: "12-11-26 10:30", Status: models.StatusConfirmed},
	}

	_, err := svc.Update(1, AppointmentPatch{Date: strPtr("12-11-26"), Time: strPtr("10:00")})
	assertStatus(t, err, http.StatusConflict)
}

func TestUpdate_RescheduleToNewService(t *testing.T) {
	store, svc := lifecycleFixture()
	store.appointments = []models.Appointment{
		{ID: 1, ServiceID: 1, Start: "12-11-26 09:00", End: "12-11-26 09:30", Status: models.StatusConfirmed},
	}

	updated, err := svc.Update(1, AppointmentPatch{
		Date:      strPtr("12-11-26"),
		Time:      strPtr("10:00"),
		ServiceID: intPtr(3),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ServiceID != 3 {
		t.Fatalf("expected service 3, got %d", updated.ServiceID)
	}
	// The end is re-derived from the new service's 60-minute duration.
	if updated.End != "12-11-26 11:00" {
		t.Fatalf("expected end 11:00, got %s", updated.End)
	}
}

func TestUpdate_RescheduleWithUnknownServiceNotFound(t *testing.T) {
	store, svc := lifecycleFixture()
	store.appointments = []models.Appointment{
		{ID: 1, ServiceID: 1, Start: "12-11-26 09:00", End: "12-11-26 09:30", Status: models.StatusConfirmed},
	}

	_, err := svc.Update(1, AppointmentPatch{
		Date:      strPtr("12-11-26"),
		Time:      strPtr("10:00"),
		ServiceID: intPtr(42),
	})
	assertStatus(t, err, http.StatusNotFound)
}

func TestUpdate_RescheduleWithoutChangesRejected(t *testing.T) {
	store, svc := lifecycleFixture()
	store.appointments = []models.Appointment{
		{ID: 1, ServiceID: 1, Start: "12-11-26 09:00", End: "12-11-26 09:30", Status: models.StatusConfirmed},
	}

	_, err := svc.Update(1, AppointmentPatch{Date: strPtr("12-11-26"), Time: strPtr("09:00")})
	assertStatus(t, err, http.StatusBadRequest)
}

func TestUpdate_DurationDriftAloneCountsAsMutation(t *testing.T) {
	store, svc := lifecycleFixture()
	// The stored end disagrees with the catalog duration: the service says 30
	// minutes but the record carries 60.
	store.appointments = []models.Appointment{
		{ID: 1, ServiceID: 1, Start: "12-11-26 09:00", End: "12-11-26 10:00", Status: models.StatusConfirmed},
	}

	updated, err := svc.Update(1, AppointmentPatch{Date: strPtr("12-11-26"), Time: strPtr("09:00")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.End != "12-11-26 09:30" {
		t.Fatalf("expected end re-derived from catalog duration, got %s", updated.End)
	}
}

func TestUpdate_UnknownIdNotFound(t *testing.T) {
	_, svc := lifecycleFixture()
	_, err := svc.Update(99, AppointmentPatch{Status: strPtr("cancelled")})
	assertStatus(t, err, http.StatusNotFound)
}

func TestUpdate_NonPositiveIdInvalid(t *testing.T) {
	_, svc := lifecycleFixture()
	_, err := svc.Update(0, AppointmentPatch{Status: strPtr("cancelled")})
	assertStatus(t, err, http.StatusBadRequest)
}

func TestList_ReturnsCollectionUnfiltered(t *testing.T) {
	store, svc := lifecycleFixture()
	store.appointments = []models.Appointment{
		{ID: 1, Status: models.StatusConfirmed},
		{ID: 2, Status: models.StatusCancelled},
		{ID: 3, Status: models.StatusNoShow},
	}

	list, err := svc.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected the full collection, got %d records", len(list))
	}
}

func TestConfirmedAppointmentsNeverOverlap(t *testing.T) {
	store, svc := lifecycleFixture()
	store.appointments = []models.Appointment{}

	times := []string{"09:00", "09:30", "09:00", "10:00", "09:30"}
	for _, tm := range times {
		svc.Create(CreateAppointmentInput{ServiceID: 1, Date: "12-11-26", Time: tm})
	}

	busy := confirmedIntervals(store.appointments)
	for i := range busy {
		for j := i + 1; j < len(busy); j++ {
			if Overlaps(busy[i].start, busy[i].end, busy[j].start, busy[j].end) {
				t.Fatalf("confirmed appointments %d and %d overlap", i, j)
			}
		}
	}
}
