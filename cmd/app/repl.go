package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"catcare/internal/models/db_models"
	"catcare/internal/models/request_models"
	"catcare/internal/repositories"
	"catcare/internal/services"
)

// chatLoop is the thin presentation collaborator: it translates stdin lines
// into service calls and prints the results.
type chatLoop struct {
	sessions      services.SessionServiceInterface
	subscriptions services.SubscriptionServiceInterface
	chat          services.ChatServiceInterface
	directory     services.DirectoryServiceInterface
	store         repositories.KeyValueStore
	log           *zap.Logger
}

func (l *chatLoop) run(ctx context.Context) {
	fmt.Println("CatCare AI — type /help for commands, anything else goes to the assistant.")
	l.printSession()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "/quit" {
			return
		}
		if strings.HasPrefix(line, "/") {
			l.handleCommand(ctx, line)
			continue
		}
		l.send(ctx, line)
	}
}

func (l *chatLoop) handleCommand(ctx context.Context, line string) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "/help":
		fmt.Println(`/login <username> <password>
/register <username> <password> <pet_owner|doctor> <display name...>
/pet <name> <breed> <age>
/status   subscription and quota
/upgrade <monthly|yearly>
/cancel   back to free tier
/consult  mark first consult used
/doctors  doctor directory
/clinics  clinic directory
/calls    recent doctor calls
/refresh  new chat transcript
/logout
/wipe     clear all stored data
/quit`)
	case "/login":
		if len(fields) != 3 {
			fmt.Println("usage: /login <username> <password>")
			return
		}
		user, err := l.sessions.Login(ctx, request_models.LoginRequest{Username: fields[1], Password: fields[2]})
		if err != nil {
			fmt.Println("login failed:", err)
			return
		}
		fmt.Printf("welcome back, %s (%s)\n", user.Name, user.Type)
	case "/register":
		if len(fields) < 5 {
			fmt.Println("usage: /register <username> <password> <pet_owner|doctor> <display name...>")
			return
		}
		user, err := l.sessions.Register(ctx, request_models.SignUpRequest{
			Username: fields[1],
			Password: fields[2],
			Type:     db_models.UserType(fields[3]),
			Name:     strings.Join(fields[4:], " "),
		})
		if err != nil {
			fmt.Println("registration failed:", err)
			return
		}
		fmt.Printf("registered %s (%s)\n", user.Username, user.Type)
	case "/pet":
		if len(fields) != 4 {
			fmt.Println("usage: /pet <name> <breed> <age>")
			return
		}
		age, err := strconv.Atoi(fields[3])
		if err != nil {
			fmt.Println("age must be a number")
			return
		}
		pet, err := l.sessions.SavePet(ctx, request_models.SavePetRequest{Name: fields[1], Breed: fields[2], Age: age})
		if err != nil {
			fmt.Println("save pet failed:", err)
			return
		}
		fmt.Printf("saved pet %s (%s, %d)\n", pet.Name, pet.Breed, pet.Age)
	case "/status":
		status := l.subscriptions.Status()
		fmt.Printf("plan=%s subscribed=%t canRequest=%t remainingFree=%d firstConsultUsed=%t\n",
			status.SubscriptionType, status.IsSubscribed, status.CanMakeAIRequest,
			status.RemainingFreeRequests, status.HasUsedFirstConsult)
	case "/upgrade":
		if len(fields) != 2 {
			fmt.Println("usage: /upgrade <monthly|yearly>")
			return
		}
		if err := l.subscriptions.UpgradeSubscription(ctx, db_models.SubscriptionType(fields[1])); err != nil {
			fmt.Println("upgrade failed:", err)
			return
		}
		fmt.Println("subscription active:", fields[1])
	case "/cancel":
		if err := l.subscriptions.CancelSubscription(ctx); err != nil {
			fmt.Println("cancel failed:", err)
			return
		}
		fmt.Println("back on the free plan, quota renewed")
	case "/consult":
		if err := l.subscriptions.MarkFirstConsultUsed(ctx); err != nil {
			fmt.Println("failed:", err)
			return
		}
		fmt.Println("first consult marked as used")
	case "/doctors":
		for _, d := range l.directory.Doctors() {
			fmt.Printf("%d. %s — %s, %s (%.1f)\n", d.ID, d.Name, d.Specialty, d.Location, d.Rating)
		}
	case "/clinics":
		for _, c := range l.directory.Clinics() {
			fmt.Printf("%d. %s — %s, %s, %s (%.1f)\n", c.ID, c.Name, c.Services, c.Distance, c.Phone, c.Rating)
		}
	case "/calls":
		calls := l.directory.RecentCalls(ctx)
		if len(calls) == 0 {
			fmt.Println("no calls on record")
			return
		}
		for _, call := range calls {
			fmt.Printf("%s %s — %s with %s (%s, %s)\n",
				call.CallDate, call.CallTime, call.PatientName, call.PetName, call.Status, call.Duration)
		}
	case "/refresh":
		l.chat.Refresh()
		fmt.Println("chat refreshed")
	case "/logout":
		if err := l.sessions.Logout(ctx); err != nil {
			fmt.Println("logout failed:", err)
			return
		}
		fmt.Println("logged out")
	case "/wipe":
		if err := repositories.ClearAllData(ctx, l.store); err != nil {
			fmt.Println("wipe failed:", err)
			return
		}
		fmt.Println("all stored data removed; restart to reseed demo accounts")
	default:
		fmt.Println("unknown command, try /help")
	}
}

func (l *chatLoop) send(ctx context.Context, text string) {
	reply, err := l.chat.Send(ctx, text)
	if err != nil {
		fmt.Println("assistant unavailable:", err)
		return
	}

	fmt.Printf("\n%s\n", reply.Text)
	if len(reply.Recommendations) > 0 {
		for _, rec := range reply.Recommendations {
			fmt.Println("  •", rec)
		}
	}
	if reply.DoctorInfo != nil {
		d := reply.DoctorInfo
		fmt.Printf("  referred: %s — %s, %s (%.1f)\n", d.Name, d.Specialty, d.Location, d.Rating)
	}
	fmt.Printf("  [confidence %d%%, urgency %s]\n\n", reply.Confidence, reply.Urgency)
}

func (l *chatLoop) printSession() {
	if user := l.sessions.CurrentUser(); user != nil {
		fmt.Printf("signed in as %s (%s)\n", user.Name, user.Type)
		if pet := l.sessions.CurrentPet(); pet != nil {
			fmt.Printf("your pet: %s (%s, %d)\n", pet.Name, pet.Breed, pet.Age)
		}
		return
	}
	fmt.Println("not signed in — try /login petowner password")
}
