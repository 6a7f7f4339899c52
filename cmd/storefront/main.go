// Command storefront is the terminal front end for the clinic's shop and
// appointment booking: browse the catalog, manage the cart, check out,
// track orders, read the blog, and hand off appointment requests to
// WhatsApp.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"arogya-storefront/internal/api"
	"arogya-storefront/internal/appointment"
	"arogya-storefront/internal/auth"
	"arogya-storefront/internal/checkout"
	"arogya-storefront/internal/config"
	"arogya-storefront/internal/model"
	"arogya-storefront/internal/service"
	"arogya-storefront/internal/store"

	"github.com/rs/zerolog"
)

const usage = `Usage: storefront <command> [arguments]

Commands:
  register      create an account (replays a pending add-to-cart)
  login         sign in with mobile and password
  logout        sign out and clear stored credentials
  whoami        show the signed-in profile
  products      list the catalog, optionally by category
  categories    list catalog categories
  product       show one product
  cart          show the cart with totals
  add           add a product to the cart (sets the quantity)
  inc           increase a cart line's quantity by one
  dec           decrease a cart line's quantity by one (zero removes)
  remove        remove a product from the cart
  checkout      place the order
  orders        list your orders with status
  blogs         list blog posts
  blog          read one blog post
  testimonials  list patient testimonials
  appointment   build a WhatsApp appointment request
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app bundles everything a command needs.
type app struct {
	cfg          *config.Config
	logger       zerolog.Logger
	creds        *auth.CredentialStore
	users        service.UserService
	products     service.ProductsService
	carts        service.CartService
	orders       service.OrderService
	blogs        service.BlogService
	testimonials service.TestimonialService
	userStore    *store.UserStore
	productStore *store.ProductStore
	cartFlow     *checkout.CartFlow
}

func run() error {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("no command given")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)

	creds, err := auth.NewCredentialStore(cfg.Storage.CredentialsFile, logger)
	if err != nil {
		return fmt.Errorf("failed to open credential store: %w", err)
	}

	client := api.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.Timeout)*time.Second, creds, logger)

	a := &app{
		cfg:          cfg,
		logger:       logger,
		creds:        creds,
		users:        service.NewUserService(client, logger),
		products:     service.NewProductsService(client, logger),
		carts:        service.NewCartService(client, logger),
		orders:       service.NewOrderService(client, logger),
		blogs:        service.NewBlogService(client, logger),
		testimonials: service.NewTestimonialService(client, logger),
	}
	a.userStore = store.NewUserStore(a.users, logger)
	a.productStore = store.NewProductStore(a.products, logger)
	a.cartFlow = checkout.NewCartFlow(a.users, a.carts, creds, logger)

	ctx := context.Background()
	command, args := os.Args[1], os.Args[2:]

	switch command {
	case "register":
		return a.register(ctx, args)
	case "login":
		return a.login(ctx, args)
	case "logout":
		return a.logout()
	case "whoami":
		return a.whoami(ctx)
	case "products":
		return a.listProducts(ctx, args)
	case "categories":
		return a.listCategories(ctx)
	case "product":
		return a.showProduct(ctx, args)
	case "cart":
		return a.showCart(ctx)
	case "add":
		return a.addToCart(ctx, args)
	case "inc":
		return a.changeQuantity(ctx, args, +1)
	case "dec":
		return a.changeQuantity(ctx, args, -1)
	case "remove":
		return a.removeFromCart(ctx, args)
	case "checkout":
		return a.checkout(ctx, args)
	case "orders":
		return a.listOrders(ctx)
	case "blogs":
		return a.listBlogs(ctx)
	case "blog":
		return a.showBlog(ctx, args)
	case "testimonials":
		return a.listTestimonials(ctx)
	case "appointment":
		return a.appointment(args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "full name")
	mobile := fs.String("mobile", "", "mobile number")
	password := fs.String("password", "", "password")
	email := fs.String("email", "", "email address (optional)")
	fs.Parse(args)

	if *name == "" || *mobile == "" || *password == "" {
		return fmt.Errorf("register requires -name, -mobile and -password")
	}

	session, err := a.users.Register(ctx, model.RegisterInput{
		Name:     *name,
		Mobile:   *mobile,
		Password: *password,
		Email:    *email,
	})
	if err != nil {
		return err
	}

	// Persistence is owned here, not inside the service.
	if err := a.creds.Save(session.Token, session.User); err != nil {
		return err
	}
	a.userStore.Set(session.User)

	fmt.Printf("Welcome, %s! You are now signed in.\n", session.User.Name)
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	mobile := fs.String("mobile", "", "mobile number")
	password := fs.String("password", "", "password")
	fs.Parse(args)

	if *mobile == "" || *password == "" {
		return fmt.Errorf("login requires -mobile and -password")
	}

	session, err := a.users.Login(ctx, *mobile, *password)
	if err != nil {
		return err
	}

	if err := a.creds.Save(session.Token, session.User); err != nil {
		return err
	}
	a.userStore.Set(session.User)

	fmt.Printf("Welcome back, %s!\n", session.User.Name)
	return nil
}

func (a *app) logout() error {
	if err := a.creds.Clear(); err != nil {
		return err
	}
	a.userStore.Clear()
	fmt.Println("Signed out.")
	return nil
}

func (a *app) whoami(ctx context.Context) error {
	a.userStore.Load(ctx)
	user, ok := a.userStore.Current()
	if !ok {
		fmt.Println("Not signed in.")
		return nil
	}
	fmt.Printf("%s <%s> (%s)\n", user.Name, user.Email, user.Role)
	return nil
}

func (a *app) listProducts(ctx context.Context, args []string) error {
	var (
		products []model.Product
		err      error
	)
	if len(args) > 0 {
		products, err = a.productStore.FilterByCategory(ctx, args[0])
	} else {
		products, err = a.productStore.Products(ctx)
	}
	if err != nil {
		return err
	}

	if len(products) == 0 {
		fmt.Println("No products found.")
		return nil
	}
	for _, p := range products {
		fmt.Printf("%-26s %-22s ₹%-8s %s\n", p.ID, p.Name, formatAmount(p.EffectivePrice()), p.Category)
	}
	return nil
}

func (a *app) listCategories(ctx context.Context) error {
	categories, err := a.productStore.Categories(ctx)
	if err != nil {
		return err
	}
	for _, c := range categories {
		fmt.Println(c)
	}
	return nil
}

func (a *app) showProduct(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("product requires an id")
	}

	p, err := a.productStore.FindByID(ctx, args[0])
	if errors.Is(err, model.ErrNotFound) {
		fmt.Println("Product not found.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s\n%s\n", p.Name, p.Description)
	if p.EffectivePrice() < p.Price {
		fmt.Printf("Price: ₹%s (was ₹%s)\n", formatAmount(p.EffectivePrice()), formatAmount(p.Price))
	} else {
		fmt.Printf("Price: ₹%s\n", formatAmount(p.Price))
	}
	if img := p.PrimaryImage(); img != "" {
		fmt.Printf("Image: %s\n", img)
	}
	return nil
}

func (a *app) showCart(ctx context.Context) error {
	cart, err := a.carts.GetCart(ctx)
	if err != nil {
		if api.IsUnauthorized(err) {
			fmt.Println("Sign in to see your cart.")
			return nil
		}
		return err
	}

	if len(cart.Items) == 0 {
		fmt.Println("Your cart is empty. Start shopping to add items!")
		return nil
	}

	for _, item := range cart.Items {
		fmt.Printf("%-22s x%-3d ₹%s\n", item.Name, item.Quantity, formatAmount(item.Price*float64(item.Quantity)))
	}

	subtotal := cart.Subtotal()
	fee := checkout.ShippingFeeFor(subtotal)
	fmt.Printf("\nSubtotal: ₹%s\n", formatAmount(subtotal))
	if fee == 0 {
		fmt.Println("Shipping: FREE")
	} else {
		fmt.Printf("Shipping: ₹%s (add ₹%s more for free shipping)\n",
			formatAmount(fee), formatAmount(checkout.AmountToFreeShipping(subtotal)))
	}
	fmt.Printf("Total:    ₹%s\n", formatAmount(checkout.TotalFor(subtotal)))
	return nil
}

func (a *app) addToCart(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	name := fs.String("name", "", "full name (to register while adding)")
	mobile := fs.String("mobile", "", "mobile number (to register while adding)")
	password := fs.String("password", "", "password (to register while adding)")
	email := fs.String("email", "", "email address (optional)")
	fs.Parse(args)

	rest := fs.Args()
	if len(rest) < 1 {
		return fmt.Errorf("add requires a product id")
	}
	productID := rest[0]
	quantity := 1
	if len(rest) > 1 {
		q, err := strconv.Atoi(rest[1])
		if err != nil {
			return fmt.Errorf("invalid quantity: %s", rest[1])
		}
		quantity = q
	}

	cart, err := a.cartFlow.AddToCart(ctx, productID, quantity)
	if errors.Is(err, model.ErrAuthRequired) {
		if *name == "" || *mobile == "" || *password == "" {
			return fmt.Errorf("sign in first, or pass -name, -mobile and -password to register and add in one go")
		}
		// The signed-out branch: register, then the add is replayed once.
		session, replayed, rerr := a.cartFlow.RegisterAndAddToCart(ctx, model.RegisterInput{
			Name:     *name,
			Mobile:   *mobile,
			Password: *password,
			Email:    *email,
		}, productID, quantity)
		if rerr != nil {
			return rerr
		}
		a.userStore.Set(session.User)
		cart = replayed
		fmt.Printf("Welcome, %s! Account created.\n", session.User.Name)
	} else if err != nil {
		return err
	}

	fmt.Printf("Added to cart. %d item(s), subtotal ₹%s.\n", cart.Count(), formatAmount(cart.Subtotal()))
	return nil
}

func (a *app) changeQuantity(ctx context.Context, args []string, delta int) error {
	if len(args) < 1 {
		return fmt.Errorf("a product id is required")
	}

	cart, err := a.carts.GetCart(ctx)
	if err != nil {
		return err
	}

	updated, err := a.cartFlow.ChangeQuantity(ctx, cart, args[0], delta)
	if errors.Is(err, model.ErrNotFound) {
		fmt.Println("That product is not in your cart.")
		return nil
	}
	if err != nil {
		return err
	}

	if item, ok := updated.Item(args[0]); ok {
		fmt.Printf("Quantity is now %d.\n", item.Quantity)
	} else {
		fmt.Println("Item removed from cart.")
	}
	return nil
}

func (a *app) removeFromCart(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("remove requires a product id")
	}

	cart, err := a.carts.GetCart(ctx)
	if err != nil {
		return err
	}
	if _, ok := cart.Item(args[0]); !ok {
		fmt.Println("That product is not in your cart.")
		return nil
	}

	if err := a.carts.RemoveFromCart(ctx, cart.ID, args[0]); err != nil {
		return err
	}
	fmt.Println("Item removed from cart.")
	return nil
}

func (a *app) checkout(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ExitOnError)
	phone := fs.String("phone", "", "contact phone number")
	city := fs.String("city", "", "delivery city")
	pincode := fs.String("pincode", "", "delivery pincode")
	street := fs.String("street", "", "street address")
	notes := fs.String("notes", "", "delivery notes (optional)")
	fs.Parse(args)

	a.userStore.Load(ctx)
	user, ok := a.userStore.Current()
	if !ok {
		return model.ErrAuthRequired
	}
	if *phone == "" {
		*phone = user.PhoneNumber
	}

	cart, err := a.carts.GetCart(ctx)
	if err != nil {
		return err
	}

	session := checkout.NewSession(a.carts, a.orders, a.cfg.WhatsApp.OrderNumber, a.logger)

	result, err := session.PlaceOrder(ctx, user, cart, checkout.Delivery{
		PhoneNumber: *phone,
		Address: model.Address{
			City:          *city,
			Pincode:       *pincode,
			StreetAddress: *street,
		},
		Notes: *notes,
	})
	if err != nil {
		return err
	}

	fmt.Println("Order placed successfully!")
	fmt.Printf("Order number: %s (id %s)\n", result.OrderNumber, result.Order.ID)
	fmt.Printf("Notify the clinic on WhatsApp:\n%s\n", result.WhatsAppLink)
	return nil
}

func (a *app) listOrders(ctx context.Context) error {
	orders, err := a.orders.GetOrders(ctx)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Println("No orders yet.")
		return nil
	}
	for _, o := range orders {
		fmt.Printf("%-26s %-12s payment:%-8s ₹%s\n", o.ID, o.Status, o.PaymentStatus, formatAmount(o.Amount))
	}
	return nil
}

func (a *app) listBlogs(ctx context.Context) error {
	blogs, err := a.blogs.GetBlogs(ctx)
	if err != nil {
		return err
	}
	for _, b := range blogs {
		fmt.Printf("%-26s %s\n", b.ID, b.Title)
		if b.Excerpt != "" {
			fmt.Printf("  %s\n", b.Excerpt)
		}
	}
	return nil
}

func (a *app) showBlog(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("blog requires an id")
	}

	b, err := a.blogs.GetBlogByID(ctx, args[0])
	if errors.Is(err, model.ErrNotFound) {
		fmt.Println("Blog post not found.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s\n\n%s\n", b.Title, b.Content)
	return nil
}

func (a *app) listTestimonials(ctx context.Context) error {
	ratings, err := a.testimonials.GetTestimonials(ctx)
	if err != nil {
		return err
	}
	for _, r := range ratings {
		fmt.Printf("%s  %.1f/5 (%s)\n  %s\n", r.CustomerName, r.Rating, r.Treatment, r.Description)
	}
	return nil
}

func (a *app) appointment(args []string) error {
	fs := flag.NewFlagSet("appointment", flag.ExitOnError)
	name := fs.String("name", "", "your name")
	phone := fs.String("phone", "", "your phone number")
	symptom := fs.String("symptom", "", "primary concern")
	slot := fs.String("slot", "", "preferred time slot")
	fs.Parse(args)

	req := appointment.Request{
		Name:     *name,
		Phone:    *phone,
		Symptom:  *symptom,
		TimeSlot: *slot,
	}

	link, err := req.WhatsAppLink(a.cfg.WhatsApp.AppointmentNumber)
	if err != nil {
		fmt.Println("Concerns:", appointment.Symptoms)
		fmt.Println("Slots:   ", appointment.TimeSlots)
		return err
	}

	fmt.Printf("Open this link to send your appointment request on WhatsApp:\n%s\n", link)
	return nil
}

// formatAmount prints rupee amounts without trailing zeros.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
