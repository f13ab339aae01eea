package main

import (
	"context"
	"flag"
	"fmt"
	"healthme-client/internal/app/services/core/workspace"
	"healthme-client/internal/pkg/constvars"
	"healthme-client/internal/pkg/dto/requests"
	"healthme-client/internal/pkg/dto/responses"
	"healthme-client/internal/pkg/exceptions"
	"healthme-client/internal/pkg/utils"
	"io"
	"strings"

	"github.com/goccy/go-json"
)

const usage = `usage: healthme [--server URL] [--store PATH] <command> [flags]

commands:
  login          --email --password
  signup         --name --email --password --role [--phone --age --gender --country --reason]
  logout
  whoami
  plans
  subscribe      --agree --plan ID
  pay
  watch-payment
  kyc            status | submit --specialization --license --years [--bio] --document REF
  appointments   list | show ID | reschedule ID --date YYYY-MM-DD --time HH:MM | cancel ID
                 new --practitioner ID --date YYYY-MM-DD --time HH:MM --location TEXT [--specialty TEXT]
  dashboard      [--panel NAME]
  practitioners  [--search TEXT] [ID] | --lat LAT --lng LNG
  profile        update --name --email [--specialization --bio --picture]
  version
`

type command func(ctx context.Context, args []string) error

// cli runs one command against a workspace, the way one page action runs in
// the browser.
type cli struct {
	ws      *workspace.Workspace
	out     io.Writer
	errOut  io.Writer
	version string
}

func newCLI(ws *workspace.Workspace, out, errOut io.Writer, version string) *cli {
	return &cli{
		ws:      ws,
		out:     out,
		errOut:  errOut,
		version: version,
	}
}

func (c *cli) commands() map[string]command {
	return map[string]command{
		"login":         c.login,
		"signup":        c.signup,
		"logout":        c.logout,
		"whoami":        c.whoami,
		"plans":         c.plans,
		"subscribe":     c.subscribe,
		"pay":           c.pay,
		"watch-payment": c.watchPayment,
		"kyc":           c.kyc,
		"appointments":  c.appointments,
		"dashboard":     c.dashboard,
		"practitioners": c.practitioners,
		"profile":       c.profile,
		"version":       c.printVersion,
	}
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(c.errOut, usage)
		return errUsage("missing command")
	}

	cmd, ok := c.commands()[args[0]]
	if !ok {
		fmt.Fprint(c.errOut, usage)
		return errUsage(fmt.Sprintf("unknown command %q", args[0]))
	}
	return cmd(ctx, args[1:])
}

func errUsage(message string) error {
	return exceptions.ErrClientCustomMessage(fmt.Errorf("%s", message))
}

func (c *cli) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.errOut)
	return fs
}

func (c *cli) parse(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err != nil {
		return errUsage(err.Error())
	}
	return nil
}

func (c *cli) print(v interface{}) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	_, err = fmt.Fprintln(c.out, string(encoded))
	return err
}

func validated(request interface{}) error {
	err := utils.ValidateStruct(request)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

func (c *cli) login(ctx context.Context, args []string) error {
	fs := c.flagSet("login")
	request := new(requests.Login)
	fs.StringVar(&request.Email, "email", "", "account email")
	fs.StringVar(&request.Password, "password", "", "account password")
	err := c.parse(fs, args)
	if err != nil {
		return err
	}

	utils.SanitizeLoginRequest(request)
	err = validated(request)
	if err != nil {
		return err
	}

	result, err := c.ws.Auth.Login(ctx, request)
	if err != nil {
		return err
	}
	return c.print(responses.NewWebAuthResult(result))
}

func (c *cli) signup(ctx context.Context, args []string) error {
	fs := c.flagSet("signup")
	request := new(requests.Register)
	fs.StringVar(&request.FullName, "name", "", "full name")
	fs.StringVar(&request.Email, "email", "", "account email")
	fs.StringVar(&request.Password, "password", "", "account password")
	fs.StringVar(&request.Role, "role", constvars.RolePatient, "patient or practitioner")
	fs.StringVar(&request.Phone, "phone", "", "phone number")
	fs.StringVar(&request.Age, "age", "", "age in years")
	fs.StringVar(&request.Gender, "gender", "", "gender")
	fs.StringVar(&request.Country, "country", "", "country")
	fs.StringVar(&request.ReasonForJoining, "reason", "", "reason for joining")
	err := c.parse(fs, args)
	if err != nil {
		return err
	}

	utils.SanitizeRegisterRequest(request)
	err = validated(request)
	if err != nil {
		return err
	}

	result, err := c.ws.Auth.Register(ctx, request)
	if err != nil {
		return err
	}
	return c.print(responses.NewWebAuthResult(result))
}

func (c *cli) logout(ctx context.Context, args []string) error {
	result, err := c.ws.Auth.Logout(ctx)
	if err != nil {
		return err
	}
	return c.print(responses.NewWebAuthResult(result))
}

func (c *cli) whoami(ctx context.Context, args []string) error {
	session, err := c.ws.Auth.CurrentSession(ctx)
	if err != nil {
		return err
	}
	return c.print(&responses.WebAuthResult{
		Session:  responses.NewWebSession(session),
		Redirect: c.ws.Router.DestinationFor(session, false),
	})
}

func (c *cli) plans(ctx context.Context, args []string) error {
	return c.print(c.ws.Onboarding.Plans())
}

func (c *cli) subscribe(ctx context.Context, args []string) error {
	fs := c.flagSet("subscribe")
	agreed := fs.Bool("agree", false, "agree to the terms")
	planID := fs.String("plan", "", "plan to subscribe to")
	err := c.parse(fs, args)
	if err != nil {
		return err
	}

	onboarding := c.ws.Onboarding
	_, err = onboarding.Restore(ctx)
	if err != nil {
		return err
	}

	err = onboarding.EnterTerms(ctx)
	if err != nil {
		return err
	}

	err = onboarding.SelectPlan(ctx, *agreed, strings.TrimSpace(*planID))
	if err != nil {
		return err
	}

	err = onboarding.ProceedToPayment(ctx)
	if err != nil {
		return err
	}
	return c.print(onboarding.Snapshot())
}

func (c *cli) pay(ctx context.Context, args []string) error {
	onboarding := c.ws.Onboarding
	_, err := onboarding.Restore(ctx)
	if err != nil {
		return err
	}

	err = onboarding.ConfirmPayment(ctx)
	if err != nil {
		return err
	}
	return c.print(onboarding.Snapshot())
}

// watchPayment blocks until the payment is approved. Interrupting the process
// cancels ctx and with it the watch.
func (c *cli) watchPayment(ctx context.Context, args []string) error {
	onboarding := c.ws.Onboarding
	_, err := onboarding.Restore(ctx)
	if err != nil {
		return err
	}

	err = onboarding.WaitForPaymentApproval(ctx)
	if err != nil {
		return err
	}
	return c.print(onboarding.Snapshot())
}

func (c *cli) kyc(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage("kyc needs status or submit")
	}

	onboarding := c.ws.Onboarding
	switch args[0] {
	case "status":
		_, err := onboarding.Restore(ctx)
		if err != nil {
			return err
		}
		gate, err := onboarding.EnterKyc(ctx)
		if err != nil {
			return err
		}
		return c.print(gate)
	case "submit":
		return c.submitKyc(ctx, args[1:])
	default:
		return errUsage(fmt.Sprintf("unknown kyc action %q", args[0]))
	}
}

func (c *cli) submitKyc(ctx context.Context, args []string) error {
	fs := c.flagSet("kyc submit")
	request := new(requests.SubmitKyc)
	fs.StringVar(&request.Specialization, "specialization", "", "medical specialization")
	fs.StringVar(&request.LicenseNumber, "license", "", "license number")
	fs.StringVar(&request.YearsOfExperience, "years", "", "years of experience")
	fs.StringVar(&request.Bio, "bio", "", "short biography")
	fs.StringVar(&request.DocumentRef, "document", "", "certificate file path or s3://bucket/key")
	err := c.parse(fs, args)
	if err != nil {
		return err
	}

	utils.SanitizeSubmitKycRequest(request)
	err = validated(request)
	if err != nil {
		return err
	}

	onboarding := c.ws.Onboarding
	_, err = onboarding.Restore(ctx)
	if err != nil {
		return err
	}

	gate, err := onboarding.EnterKyc(ctx)
	if err != nil {
		return err
	}
	if !gate.Allowed {
		printErr := c.print(gate)
		if printErr != nil {
			return printErr
		}
		return exceptions.ErrKycGateRefused(gate.Status)
	}

	err = onboarding.SubmitKyc(ctx, request)
	if err != nil {
		return err
	}
	return c.print(&responses.WebKycStatus{
		Status:   onboarding.Snapshot().KycStatus,
		Redirect: constvars.PathProcessing,
	})
}

func (c *cli) appointments(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	usecase := c.ws.Appointments
	action, rest := args[0], args[1:]
	switch action {
	case "list":
		result, err := usecase.List(ctx)
		if err != nil {
			return err
		}
		return c.print(result)
	case "new":
		fs := c.flagSet("appointments new")
		request := new(requests.CreateAppointment)
		fs.StringVar(&request.PractitionerID, "practitioner", "", "practitioner id, see practitioners --lat --lng")
		fs.StringVar(&request.Date, "date", "", "date, YYYY-MM-DD")
		fs.StringVar(&request.Time, "time", "", "time, HH:MM")
		fs.StringVar(&request.Location, "location", "", "where you are, for example \"Lagos, Nigeria\"")
		fs.StringVar(&request.Specialty, "specialty", "", "specialty you are booking for")
		err := c.parse(fs, rest)
		if err != nil {
			return err
		}

		utils.SanitizeCreateAppointmentRequest(request)
		err = validated(request)
		if err != nil {
			return err
		}

		result, err := usecase.Create(ctx, request)
		if err != nil {
			return err
		}
		return c.print(result)
	}

	if len(rest) == 0 || strings.HasPrefix(rest[0], "-") {
		return errUsage(fmt.Sprintf("appointments %s needs an appointment id", action))
	}
	appointmentID := strings.TrimSpace(rest[0])

	switch action {
	case "show":
		result, err := usecase.Get(ctx, appointmentID)
		if err != nil {
			return err
		}
		return c.print(result)
	case "reschedule":
		fs := c.flagSet("appointments reschedule")
		request := new(requests.RescheduleAppointment)
		fs.StringVar(&request.Date, "date", "", "new date, YYYY-MM-DD")
		fs.StringVar(&request.Time, "time", "", "new time, HH:MM")
		err := c.parse(fs, rest[1:])
		if err != nil {
			return err
		}

		utils.SanitizeRescheduleAppointmentRequest(request)
		err = validated(request)
		if err != nil {
			return err
		}

		result, err := usecase.Reschedule(ctx, appointmentID, request)
		if err != nil {
			return err
		}
		return c.print(result)
	case "cancel":
		result, err := usecase.Cancel(ctx, appointmentID)
		if err != nil {
			return err
		}
		return c.print(result)
	default:
		return errUsage(fmt.Sprintf("unknown appointments action %q", action))
	}
}

// dashboard shows the dashboard of whoever is logged in.
func (c *cli) dashboard(ctx context.Context, args []string) error {
	fs := c.flagSet("dashboard")
	panel := fs.String("panel", "", "admin panel to load with the overview")
	err := c.parse(fs, args)
	if err != nil {
		return err
	}

	switch c.ws.Sessions.CurrentRole(ctx) {
	case constvars.RolePatient:
		result, err := c.ws.Patients.Dashboard(ctx)
		if err != nil {
			return err
		}
		return c.print(result)
	case constvars.RolePractitioner:
		result, err := c.ws.Practitioners.Dashboard(ctx)
		if err != nil {
			return err
		}
		return c.print(result)
	case constvars.RoleAdmin:
		result, err := c.ws.Admin.Dashboard(ctx, strings.TrimSpace(*panel))
		if err != nil {
			return err
		}
		return c.print(result)
	default:
		return exceptions.ErrNotLoggedIn()
	}
}

func (c *cli) practitioners(ctx context.Context, args []string) error {
	fs := c.flagSet("practitioners")
	search := fs.String("search", "", "filter by name or specialization")
	latitude := fs.String("lat", "", "latitude to search nearby practitioners")
	longitude := fs.String("lng", "", "longitude to search nearby practitioners")
	err := c.parse(fs, args)
	if err != nil {
		return err
	}

	if *latitude != "" || *longitude != "" {
		result, err := c.ws.Practitioners.Nearby(ctx, &requests.NearbyPractitioners{
			Latitude:  *latitude,
			Longitude: *longitude,
		})
		if err != nil {
			return err
		}
		return c.print(result)
	}

	if fs.NArg() > 0 {
		result, err := c.ws.Practitioners.GetPublic(ctx, strings.TrimSpace(fs.Arg(0)))
		if err != nil {
			return err
		}
		return c.print(result)
	}

	result, err := c.ws.Practitioners.ListPublic(ctx, strings.TrimSpace(*search))
	if err != nil {
		return err
	}
	return c.print(result)
}

func (c *cli) profile(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] != "update" {
		return errUsage("profile needs update")
	}

	fs := c.flagSet("profile update")
	request := new(requests.UpdatePractitionerProfile)
	fs.StringVar(&request.FullName, "name", "", "full name")
	fs.StringVar(&request.Email, "email", "", "contact email")
	fs.StringVar(&request.Specialization, "specialization", "", "medical specialization")
	fs.StringVar(&request.Bio, "bio", "", "short biography")
	fs.StringVar(&request.ProfilePicture, "picture", "", "profile picture URL")
	err := c.parse(fs, args[1:])
	if err != nil {
		return err
	}

	utils.SanitizeUpdatePractitionerProfileRequest(request)
	err = validated(request)
	if err != nil {
		return err
	}

	err = c.ws.Practitioners.UpdateProfile(ctx, request)
	if err != nil {
		return err
	}
	return c.print(request)
}

func (c *cli) printVersion(ctx context.Context, args []string) error {
	return c.print(map[string]string{"version": c.version})
}
