package bootstrap

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaperone/vioctl/internal/config"
	"github.com/chaperone/vioctl/internal/platform/vrops"
	"github.com/chaperone/vioctl/internal/reconcile"
)

// mockAppliance is a hand-written mock for ApplianceAPI. Unset funcs
// behave like a fresh, healthy appliance.
type mockAppliance struct {
	ReadyFunc                   func(ctx context.Context) error
	GetNTPServersFunc           func(ctx context.Context) ([]string, error)
	SetNTPServersFunc           func(ctx context.Context, servers []string) error
	SetInitialAdminPasswordFunc func(ctx context.Context, password string) error
	AdminRoleStatusFunc         func(ctx context.Context) (bool, error)
	SetAdminRoleFunc            func(ctx context.Context) error
	GetClusterNameFunc          func(ctx context.Context) (string, error)
	SetClusterNameFunc          func(ctx context.Context, name string) error

	setNTPCalls     int
	setRoleCalls    int
	setClusterCalls int
}

func (m *mockAppliance) Ready(ctx context.Context) error {
	if m.ReadyFunc != nil {
		return m.ReadyFunc(ctx)
	}
	return nil
}

func (m *mockAppliance) GetNTPServers(ctx context.Context) ([]string, error) {
	if m.GetNTPServersFunc != nil {
		return m.GetNTPServersFunc(ctx)
	}
	return nil, nil
}

func (m *mockAppliance) SetNTPServers(ctx context.Context, servers []string) error {
	m.setNTPCalls++
	if m.SetNTPServersFunc != nil {
		return m.SetNTPServersFunc(ctx, servers)
	}
	return nil
}

func (m *mockAppliance) SetInitialAdminPassword(ctx context.Context, password string) error {
	if m.SetInitialAdminPasswordFunc != nil {
		return m.SetInitialAdminPasswordFunc(ctx, password)
	}
	return nil
}

func (m *mockAppliance) AdminRoleStatus(ctx context.Context) (bool, error) {
	if m.AdminRoleStatusFunc != nil {
		return m.AdminRoleStatusFunc(ctx)
	}
	return false, nil
}

func (m *mockAppliance) SetAdminRole(ctx context.Context) error {
	m.setRoleCalls++
	if m.SetAdminRoleFunc != nil {
		return m.SetAdminRoleFunc(ctx)
	}
	return nil
}

func (m *mockAppliance) GetClusterName(ctx context.Context) (string, error) {
	if m.GetClusterNameFunc != nil {
		return m.GetClusterNameFunc(ctx)
	}
	return "", nil
}

func (m *mockAppliance) SetClusterName(ctx context.Context, name string) error {
	m.setClusterCalls++
	if m.SetClusterNameFunc != nil {
		return m.SetClusterNameFunc(ctx, name)
	}
	return nil
}

func testContext(vropsCfg config.VROpsConfig) *reconcile.Context {
	return reconcile.NewContext(context.Background(),
		&config.Config{VROps: vropsCfg}, reconcile.StatePresent)
}

func TestApplianceAPI_ImplementedByClient(_ *testing.T) {
	var _ ApplianceAPI = (*vrops.Client)(nil)
}

func TestCheckState_AlwaysAbsent(t *testing.T) {
	assert.Equal(t, reconcile.StateAbsent, CheckState())
}

func TestPhases_Order(t *testing.T) {
	phases := Phases(&mockAppliance{})
	var names []string
	for _, p := range phases {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{"ready", "adminpassword", "ntp", "adminrole", "clustername"}, names)
}

func TestReadyPhase_EventualSuccess(t *testing.T) {
	calls := 0
	m := &mockAppliance{
		ReadyFunc: func(context.Context) error {
			calls++
			if calls < 2 {
				return errors.New("connection refused")
			}
			return nil
		},
	}

	ctx := testContext(config.VROpsConfig{Host: "10.0.0.5"})
	phase := &ReadyPhase{api: m, InitialDelay: time.Millisecond}
	require.NoError(t, phase.Reconcile(ctx))
	assert.Equal(t, 2, calls)
}

func TestReadyPhase_GivesUp(t *testing.T) {
	m := &mockAppliance{
		ReadyFunc: func(context.Context) error {
			return errors.New("connection refused")
		},
	}

	ctx := testContext(config.VROpsConfig{Host: "10.0.0.5"})
	phase := &ReadyPhase{api: m, MaxRetries: 1, InitialDelay: time.Millisecond}
	err := phase.Reconcile(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "should be ready")
}

func TestAdminPasswordPhase_FirstRun(t *testing.T) {
	m := &mockAppliance{
		SetInitialAdminPasswordFunc: func(_ context.Context, password string) error {
			assert.Equal(t, "secret", password)
			return nil
		},
	}

	ctx := testContext(config.VROpsConfig{Host: "10.0.0.5", Password: "secret"})
	require.NoError(t, (&AdminPasswordPhase{api: m}).Reconcile(ctx))
	assert.True(t, ctx.Result.Changed)
}

func TestAdminPasswordPhase_AlreadySet(t *testing.T) {
	m := &mockAppliance{
		SetInitialAdminPasswordFunc: func(context.Context, string) error {
			return vrops.ErrPasswordAlreadySet
		},
	}

	ctx := testContext(config.VROpsConfig{Host: "10.0.0.5", Password: "secret"})
	require.NoError(t, (&AdminPasswordPhase{api: m}).Reconcile(ctx))
	assert.False(t, ctx.Result.Changed, "already-set must count as converged")
}

func TestAdminPasswordPhase_OtherErrorAborts(t *testing.T) {
	boom := errors.New("policy violation")
	m := &mockAppliance{
		SetInitialAdminPasswordFunc: func(context.Context, string) error {
			return boom
		},
	}

	ctx := testContext(config.VROpsConfig{Host: "10.0.0.5", Password: "secret"})
	err := (&AdminPasswordPhase{api: m}).Reconcile(ctx)
	require.ErrorIs(t, err, boom)
	assert.False(t, ctx.Result.Changed)
}

func TestMissingServers(t *testing.T) {
	tests := []struct {
		name    string
		desired []string
		current []string
		want    []string
	}{
		{"partial overlap", []string{"ntp1", "ntp2"}, []string{"ntp1"}, []string{"ntp2"}},
		{"equal sets any order", []string{"ntp1", "ntp2"}, []string{"ntp2", "ntp1"}, nil},
		{"nothing configured", []string{"ntp1", "ntp2"}, nil, []string{"ntp1", "ntp2"}},
		{"remote superset", []string{"ntp1"}, []string{"ntp1", "ntp9"}, nil},
		{"disjoint", []string{"ntp1"}, []string{"ntp9"}, []string{"ntp1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, missingServers(tt.desired, tt.current))
		})
	}
}

func TestNTPPhase_PushesOnlyMissing(t *testing.T) {
	var pushed []string
	m := &mockAppliance{
		GetNTPServersFunc: func(context.Context) ([]string, error) {
			return []string{"ntp1"}, nil
		},
		SetNTPServersFunc: func(_ context.Context, servers []string) error {
			pushed = servers
			return nil
		},
	}

	ctx := testContext(config.VROpsConfig{Host: "10.0.0.5", NTPServers: []string{"ntp1", "ntp2"}})
	require.NoError(t, (&NTPPhase{api: m}).Reconcile(ctx))

	assert.Equal(t, []string{"ntp2"}, pushed)
	assert.True(t, ctx.Result.Changed)
}

func TestNTPPhase_NoWriteWhenConverged(t *testing.T) {
	m := &mockAppliance{
		GetNTPServersFunc: func(context.Context) ([]string, error) {
			return []string{"ntp2", "ntp1"}, nil
		},
	}

	ctx := testContext(config.VROpsConfig{Host: "10.0.0.5", NTPServers: []string{"ntp1", "ntp2"}})
	require.NoError(t, (&NTPPhase{api: m}).Reconcile(ctx))

	assert.Equal(t, 0, m.setNTPCalls, "converged list must not trigger a write")
	assert.False(t, ctx.Result.Changed)
}

func TestNTPPhase_SkipsWithoutDesiredServers(t *testing.T) {
	m := &mockAppliance{
		GetNTPServersFunc: func(context.Context) ([]string, error) {
			t.Error("must not query NTP state when no servers are desired")
			return nil, nil
		},
	}

	ctx := testContext(config.VROpsConfig{Host: "10.0.0.5"})
	require.NoError(t, (&NTPPhase{api: m}).Reconcile(ctx))
	assert.False(t, ctx.Result.Changed)
}

func TestNTPPhase_QueryErrorAborts(t *testing.T) {
	boom := errors.New("bad gateway")
	m := &mockAppliance{
		GetNTPServersFunc: func(context.Context) ([]string, error) {
			return nil, boom
		},
	}

	ctx := testContext(config.VROpsConfig{Host: "10.0.0.5", NTPServers: []string{"ntp1"}})
	err := (&NTPPhase{api: m}).Reconcile(ctx)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, m.setNTPCalls)
}

func TestAdminRolePhase_Promotes(t *testing.T) {
	m := &mockAppliance{}

	ctx := testContext(config.VROpsConfig{Host: "10.0.0.5"})
	require.NoError(t, (&AdminRolePhase{api: m}).Reconcile(ctx))

	assert.Equal(t, 1, m.setRoleCalls)
	assert.True(t, ctx.Result.Changed)
}

func TestAdminRolePhase_SkipsWhileRunning(t *testing.T) {
	m := &mockAppliance{
		AdminRoleStatusFunc: func(context.Context) (bool, error) {
			return true, nil
		},
	}

	ctx := testContext(config.VROpsConfig{Host: "10.0.0.5"})
	require.NoError(t, (&AdminRolePhase{api: m}).Reconcile(ctx))

	assert.Equal(t, 0, m.setRoleCalls, "in-progress configuration must not be re-triggered")
	assert.False(t, ctx.Result.Changed)
}

func TestClusterNamePhase_Disabled(t *testing.T) {
	m := &mockAppliance{
		GetClusterNameFunc: func(context.Context) (string, error) {
			t.Error("must not query cluster name when naming is disabled")
			return "", nil
		},
	}

	ctx := testContext(config.VROpsConfig{Host: "10.0.0.5"})
	require.NoError(t, (&ClusterNamePhase{api: m}).Reconcile(ctx))
	assert.Equal(t, 0, m.setClusterCalls)
}

func TestClusterNamePhase_SetsName(t *testing.T) {
	var named string
	m := &mockAppliance{
		GetClusterNameFunc: func(context.Context) (string, error) {
			return "unnamed", nil
		},
		SetClusterNameFunc: func(_ context.Context, name string) error {
			named = name
			return nil
		},
	}

	ctx := testContext(config.VROpsConfig{Host: "10.0.0.5", SetClusterName: true})
	require.NoError(t, (&ClusterNamePhase{api: m}).Reconcile(ctx))

	assert.Equal(t, "10.0.0.5", named)
	assert.True(t, ctx.Result.Changed)
}

func TestClusterNamePhase_AlreadyNamed(t *testing.T) {
	m := &mockAppliance{
		GetClusterNameFunc: func(context.Context) (string, error) {
			return "10.0.0.5", nil
		},
	}

	ctx := testContext(config.VROpsConfig{Host: "10.0.0.5", SetClusterName: true})
	require.NoError(t, (&ClusterNamePhase{api: m}).Reconcile(ctx))

	assert.Equal(t, 0, m.setClusterCalls)
	assert.False(t, ctx.Result.Changed)
}
