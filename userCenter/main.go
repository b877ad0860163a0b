package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Psychopath-H/psyxml"
	psyLog "github.com/Psychopath-H/psyxml/logger"
	"github.com/Psychopath-H/psyxml/render"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/opentracing/opentracing-go"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

// CreateUser 注册用户时从请求体里绑定的数据
type CreateUser struct {
	Username string `xml:"username" json:"username" binding:"required" validate:"required"`
	Email    string `xml:"email" json:"email" validate:"required,email"`
	Password string `xml:"password" json:"password" validate:"required,min=8"`
}

type User struct {
	ID       int64  `xml:"id" json:"id"`
	Username string `xml:"username" json:"username"`
	Email    string `xml:"email" json:"email"`
}

type loginParam struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// userStore 演示用的内存存储
type userStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]User
}

func newUserStore() *userStore {
	return &userStore{nextID: 1, users: make(map[int64]User)}
}

func (s *userStore) add(in CreateUser) User {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := User{ID: s.nextID, Username: in.Username, Email: in.Email}
	s.users[user.ID] = user
	s.nextID++
	return user
}

func (s *userStore) get(id int64) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	return user, ok
}

type customClaims struct {
	UserID               int64  `json:"user_id"`
	Username             string `json:"username"`
	jwt.RegisteredClaims        // 内嵌标准的声明
}

type jwtAuth struct {
	duration  time.Duration //token的存在时间
	secretKey []byte        //加密用的私钥
}

// createToken 创建token并返回给前端
func (j *jwtAuth) createToken(username string, userId int64) (string, error) {
	claims := customClaims{
		userId,
		username, // 自定义字段
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.duration)), // 定义过期时间
			Issuer:    "userCenter",                                   // 签发人
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// interceptor jwt中间件 判断header里面是否有对应的token
func (j *jwtAuth) interceptor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth == "" {
			j.authFail(w, errors.New("token is nil"))
			return
		}
		parts := strings.SplitN(auth, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			j.authFail(w, errors.New("token is invalid"))
			return
		}
		//解析token
		claims := &customClaims{}
		parsedToken, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			return j.secretKey, nil
		})
		if err != nil || !parsedToken.Valid {
			j.authFail(w, errors.New("token is invalid"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// authFail 认证失败处理函数
func (j *jwtAuth) authFail(w http.ResponseWriter, err error) {
	psyxml.WriteXML(w, http.StatusUnauthorized, psyxml.H{"error": err.Error()})
}

// accessLog 请求结束后记录一条访问日志
func accessLog(lg *psyLog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			lg.WithFields(psyLog.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
				"cost":   time.Since(start).String(),
			}).Info("request handled")
		})
	}
}

// tracing 每个请求开一个span，上报到jaeger
func tracing(tr opentracing.Tracer) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			span := tr.StartSpan(r.Method + " " + r.URL.Path)
			defer span.Finish()
			next.ServeHTTP(w, r)
		})
	}
}

func main() {
	//通过conf/app.toml里的配置初始化
	_ = os.MkdirAll("log", 0755)
	if err := psyxml.SetLogPathWithConf(); err != nil {
		log.Println(err)
	}
	if err := psyxml.SetMaxBodyBytesWithConf(); err != nil {
		log.Println(err)
	}
	if err := psyxml.SetRenderIndentWithConf(); err != nil {
		log.Println(err)
	}

	lg := psyLog.Default()

	//使用链路追踪
	cfg := jaegercfg.Configuration{
		ServiceName: "userCenter",
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans:          true,
			CollectorEndpoint: "http://localhost:14268/api/traces",
		},
	}
	tr, closer, err := cfg.NewTracer(jaegercfg.Logger(jaeger.StdLogger))
	if err != nil {
		panic(err)
	}
	defer closer.Close()
	opentracing.SetGlobalTracer(tr)

	auth := &jwtAuth{
		duration:  time.Minute * 30,
		secretKey: []byte("moyn8y9abng7q4zkq2m73yw8tu9j5ixm"),
	}
	store := newUserStore()

	r := mux.NewRouter()
	r.Use(recovery(lg), accessLog(lg), tracing(tr))

	r.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		// expect http://localhost:9999/
		red := render.Redirect{Code: http.StatusFound, Request: req, Location: "/ping"}
		_ = red.RenderData(w, http.StatusFound)
	})

	r.HandleFunc("/ping", func(w http.ResponseWriter, req *http.Request) {
		// expect http://localhost:9999/ping
		psyxml.WriteXML(w, http.StatusOK, psyxml.H{"message": "pong"})
	}).Methods("GET")

	r.HandleFunc("/login", func(w http.ResponseWriter, req *http.Request) {
		// expect http://localhost:9999/login 获得JWT的编码数据
		var param loginParam
		if err := psyxml.BindJson(req, &param); err != nil {
			psyxml.WriteRejection(w, err)
			return
		}
		token, err := auth.createToken(param.Username, 1)
		if err != nil {
			auth.authFail(w, err)
			return
		}
		w.Header().Set("jwt_claims", token)
		psyxml.WriteXML(w, http.StatusOK, psyxml.H{"login": "succeed and token is send"})
	}).Methods("POST")

	v1 := r.PathPrefix("/userCenter").Subrouter()
	v1.Use(auth.interceptor)
	{
		v1.HandleFunc("/users", func(w http.ResponseWriter, req *http.Request) {
			// expect http://localhost:9999/userCenter/users 通过获得的JWT数据去访问这个路由
			in, err := psyxml.FromRequest[CreateUser](req)
			if err != nil {
				psyxml.WriteRejection(w, err)
				return
			}
			user := store.add(in.Value)
			psyxml.WriteXML(w, http.StatusCreated, user)
		}).Methods("POST")

		v1.HandleFunc("/users/{id}", func(w http.ResponseWriter, req *http.Request) {
			// expect http://localhost:9999/userCenter/users/1
			id, err := strconv.ParseInt(mux.Vars(req)["id"], 10, 64)
			if err != nil {
				psyxml.WriteXML(w, http.StatusBadRequest, psyxml.H{"error": "invalid user id"})
				return
			}
			user, ok := store.get(id)
			if !ok {
				psyxml.WriteXML(w, http.StatusNotFound, psyxml.H{"error": "user not found"})
				return
			}
			psyxml.Wrap(user).Respond(w)
		}).Methods("GET")
	}

	log.Println("userCenter listening on :9999")
	if err := http.ListenAndServe(":9999", r); err != nil {
		log.Fatal(err)
	}
}
