package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"wealthdesk/internal/db/models/postgres/public/model"
	"wealthdesk/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func int32Pointer(i int32) *int32 {
	return &i
}

func TestField(t *testing.T) {
	t.Run("amounts strip thousands separators", func(t *testing.T) {
		v, err := Field("1,25,000.50").Amount()
		require.NoError(t, err)
		require.Equal(t, 125000.5, *v)
	})

	t.Run("blank amount is zero, blank float is nil", func(t *testing.T) {
		v, err := Field(" ").Amount()
		require.NoError(t, err)
		require.Equal(t, 0.0, *v)

		f, err := Field("None").Float()
		require.NoError(t, err)
		require.Nil(t, f)
	})

	t.Run("counts reject fractions", func(t *testing.T) {
		c, err := Field("1,200").Count()
		require.NoError(t, err)
		require.Equal(t, int32(1200), *c)

		_, err = Field("2.5").Count()
		require.Error(t, err)
	})

	t.Run("bad number", func(t *testing.T) {
		_, err := Field("abc").Amount()
		require.ErrorContains(t, err, "invalid number")
	})

	t.Run("non-finite numbers are absent", func(t *testing.T) {
		for _, s := range []string{"nan", "NaN", "inf", "-Inf", "infinity"} {
			v, err := Field(s).Amount()
			require.NoError(t, err, s)
			require.Nil(t, v, s)

			f, err := Field(s).Float()
			require.NoError(t, err, s)
			require.Nil(t, f, s)

			_, err = Field(s).Count()
			require.Error(t, err, s)
		}
	})
}

func TestLoadSipRecords(t *testing.T) {
	t.Run("json with mixed value types", func(t *testing.T) {
		path := writeFile(t, "sips.json", `[
			{
				"sip_meta_id": "S1",
				"user_id": "c1",
				"agent_id": "A1",
				"agent_external_id": "AG1",
				"amount": "10,000",
				"scheme_name": "Flexi Cap",
				"created_at": "2023-01-05",
				"start_date": "2023-01-10",
				"increment_percentage": 0,
				"increment_amount": null,
				"is_active": true,
				"currentSipStatus": "ACTIVE",
				"success_amount": 120000.5,
				"success_count": "12",
				"deleted": "false"
			},
			{"sip_meta_id": "", "user_id": "c2"}
		]`)

		got, err := LoadSipRecords(path)
		require.NoError(t, err)
		require.Equal(t, 1, got.Skipped)

		expected := []model.SipRecords{{
			SipMetaID:           "S1",
			UserID:              "c1",
			AgentID:             util.StringPointer("A1"),
			AgentExternalID:     util.StringPointer("AG1"),
			Amount:              util.FloatPointer(10000),
			SchemeName:          util.StringPointer("Flexi Cap"),
			CreatedAt:           util.StringPointer("2023-01-05"),
			StartDate:           util.StringPointer("2023-01-10"),
			IncrementPercentage: util.FloatPointer(0),
			IncrementAmount:     util.FloatPointer(0),
			IsActive:            util.StringPointer("true"),
			CurrentSipStatus:    util.StringPointer("ACTIVE"),
			SuccessAmount:       util.FloatPointer(120000.5),
			PendingAmount:       util.FloatPointer(0),
			FailedAmount:        util.FloatPointer(0),
			SuccessCount:        int32Pointer(12),
			Deleted:             util.StringPointer("false"),
		}}
		diff := cmp.Diff(expected, got.Records)
		require.Empty(t, diff)
	})

	t.Run("csv", func(t *testing.T) {
		path := writeFile(t, "sips.csv", "sip_meta_id,user_id,amount,failed_amount,is_active\n"+
			"S1,c1,\"5,000\",\"12,500\",false\n"+
			"S2,c2,2500,,true\n")

		got, err := LoadSipRecords(path)
		require.NoError(t, err)
		require.Len(t, got.Records, 2)
		require.Equal(t, 5000.0, *got.Records[0].Amount)
		require.Equal(t, 12500.0, *got.Records[0].FailedAmount)
		require.Equal(t, 0.0, *got.Records[1].FailedAmount)
		require.Equal(t, "true", *got.Records[1].IsActive)
		require.Nil(t, got.Records[1].AgentID)
	})

	t.Run("bad number names the row", func(t *testing.T) {
		path := writeFile(t, "sips.json", `[{"sip_meta_id": "S9", "user_id": "c1", "amount": "ten"}]`)
		_, err := LoadSipRecords(path)
		require.ErrorContains(t, err, "S9")
		require.ErrorContains(t, err, "amount")
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, "sips.xml", "<sips/>")
		_, err := LoadSipRecords(path)
		require.ErrorContains(t, err, "unsupported file type")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSipRecords(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
	})
}

func TestLoadInsuranceRecords(t *testing.T) {
	path := writeFile(t, "insurance.json", `[
		{
			"source_id": "P1",
			"itf.user_id": "c1",
			"name": "Arun",
			"b.agent_external_id": "AG1",
			"insurance_type": "health",
			"premium": "12,000",
			"mf_current_value": "8,00,000",
			"mock_age": "41",
			"premium_gap": 18000,
			"opportunity_score": 7
		},
		{
			"source_id": "P2",
			"itf.user_id": "c2",
			"itf.agent_external_id": "AG2",
			"b.agent_external_id": "AG9"
		}
	]`)

	got, err := LoadInsuranceRecords(path)
	require.NoError(t, err)
	require.Len(t, got.Records, 2)

	first := got.Records[0]
	require.Equal(t, "c1", first.UserID)
	require.Equal(t, "AG1", *first.AgentExternalID)
	require.Equal(t, 12000.0, *first.Premium)
	require.Equal(t, 800000.0, *first.MfCurrentValue)
	require.Equal(t, int32(41), *first.MockAge)
	require.Equal(t, int32(7), *first.OpportunityScore)

	require.Equal(t, "AG2", *got.Records[1].AgentExternalID)
	require.Equal(t, int32(0), *got.Records[1].MockAge)
}

func TestLoadHoldings(t *testing.T) {
	path := writeFile(t, "holdings.csv", "user_id,wpc,scheme_name,current_value,portfolio_weight,live_xirr,benchmark_xirr,rating\n"+
		"c1,F1,Flexi Cap,\"1,00,000\",40,8.2,12.5,3\n"+
		"c1,F2,Small Cap,50000,20,,,\n"+
		",F3,Orphan,1,1,,,\n")

	got, err := LoadHoldings(path)
	require.NoError(t, err)
	require.Equal(t, 1, got.Skipped)
	require.Len(t, got.Records, 2)

	require.Equal(t, 100000.0, *got.Records[0].CurrentValue)
	require.Equal(t, 8.2, *got.Records[0].LiveXirr)
	require.Equal(t, "3", *got.Records[0].Rating)
	require.Nil(t, got.Records[1].LiveXirr)
	require.Nil(t, got.Records[1].Rating)
}

func TestLoadUsers(t *testing.T) {
	path := writeFile(t, "users.json", `[
		{"user_id": "c1", "name": "Arun", "agent_external_id": "AG1", "date_of_birth": "1980-04-02", "mf_current_value": "7,50,000"},
		{"user_id": null}
	]`)

	got, err := LoadUsers(path)
	require.NoError(t, err)
	require.Equal(t, 1, got.Skipped)

	expected := []model.Users{{
		UserID:          "c1",
		Name:            util.StringPointer("Arun"),
		AgentExternalID: util.StringPointer("AG1"),
		DateOfBirth:     util.StringPointer("1980-04-02"),
		MfCurrentValue:  util.FloatPointer(750000),
	}}
	diff := cmp.Diff(expected, got.Records)
	require.Empty(t, diff)
}
