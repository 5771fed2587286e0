package contact

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/tutor-contacts/internal/domain/appointment"
)

func mustContact(t *testing.T, id uint, name string, slots ...string) *Contact {
	t.Helper()
	parsed := make([]appointment.Appointment, 0, len(slots))
	for _, s := range slots {
		parsed = append(parsed, appointment.MustParse(s))
	}
	c, err := New(Params{ID: id, Name: name, Appointments: parsed})
	require.NoError(t, err)
	return c
}

func TestNewContact(t *testing.T) {
	c, err := New(Params{
		Name:     "  Alex Yeoh ",
		Phone:    Some("87438807"),
		Level:    Some(LevelP3),
		Subjects: []Subject{SubjectMath},
		Tags:     []string{"friends", " friends", "", "weekday"},
		Appointments: []appointment.Appointment{
			appointment.MustParse("10:00-12:00 SUN"),
			appointment.MustParse("12:00-14:00 SUN"),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Alex Yeoh", c.Name)
	assert.True(t, c.Email.IsEmpty())
	assert.Equal(t, "87438807", c.Phone.OrElse("-"))
	assert.Equal(t, []string{"friends", "weekday"}, c.Tags)
	assert.True(t, c.HasAppointments())
	assert.Len(t, c.Appointments(), 2)
}

func TestNewContactValidation(t *testing.T) {
	_, err := New(Params{Name: "   "})
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = New(Params{
		Name: "Bernice Yu",
		Appointments: []appointment.Appointment{
			appointment.MustParse("10:00-12:00 SUN"),
			appointment.MustParse("11:00-13:00 SUN"),
		},
	})
	assert.ErrorIs(t, err, appointment.ErrOverlapConflict)
}

func TestAppointmentsSnapshot(t *testing.T) {
	c := mustContact(t, 1, "Charlotte", "09:00-10:00 MON")

	snap := c.Appointments()
	snap[0] = appointment.MustParse("10:00-11:00 TUE")
	assert.Equal(t, "09:00-10:00 MON", c.Appointments()[0].String())

	col := c.AppointmentCollection()
	require.NoError(t, col.Add(appointment.MustParse("10:00-11:00 TUE")))
	assert.Len(t, c.Appointments(), 1)
}

func TestReplaceAppointments(t *testing.T) {
	c := mustContact(t, 1, "David", "09:00-10:00 MON")

	err := c.ReplaceAppointments([]appointment.Appointment{
		appointment.MustParse("10:00-12:00 SUN"),
		appointment.MustParse("11:00-13:00 SUN"),
	})
	assert.ErrorIs(t, err, appointment.ErrOverlapConflict)
	assert.True(t, c.HasAppointment(appointment.MustParse("09:00-10:00 MON")))

	require.NoError(t, c.ReplaceAppointments(nil))
	assert.False(t, c.HasAppointments())
}

func TestParseLevelAndSubject(t *testing.T) {
	l, err := ParseLevel(" p4 ")
	require.NoError(t, err)
	assert.Equal(t, LevelP4, l)

	_, err = ParseLevel("P7")
	assert.ErrorIs(t, err, ErrInvalidLevel)

	subs, err := ParseSubjects([]string{"math", "MT", "Math"})
	require.NoError(t, err)
	assert.Equal(t, []Subject{SubjectMath, SubjectMT}, subs)

	_, err = ParseSubjects([]string{"HISTORY"})
	assert.ErrorIs(t, err, ErrInvalidSubject)
}

func TestOptional(t *testing.T) {
	var o Optional[string]
	assert.True(t, o.IsEmpty())
	assert.Nil(t, o.Ptr())
	assert.Equal(t, "-", o.OrElse("-"))

	s := "x"
	o = FromPtr(&s)
	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, "x", v)
	assert.Equal(t, "x", *o.Ptr())

	type payload struct {
		Phone Optional[string] `json:"phone"`
		Level Optional[Level]  `json:"level"`
	}
	raw, err := json.Marshal(payload{Level: Some(LevelP1)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"phone":null,"level":"P1"}`, string(raw))

	var back payload
	require.NoError(t, json.Unmarshal([]byte(`{"phone":"123","level":null}`), &back))
	assert.Equal(t, Some("123"), back.Phone)
	assert.True(t, back.Level.IsEmpty())
}
